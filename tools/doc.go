// Copyright (c) Microsoft. All rights reserved.

// Package tools provides mock lookup tools for the sample agents: flight
// status, flight details, stock prices, financial news, recipes, pantry
// checks, and server status. Each is a pure mapping from a fixed key set to
// fixed outputs with an explicit fallback, so sample runs are deterministic
// and need no external services.
//
// The pure functions (e.g. [FlightStatus]) carry the behavior; the matching
// constructors (e.g. [FlightStatusTool]) wrap them as [agentlab.Tool] values
// with schemas the model can call.
package tools
