// Copyright (c) Microsoft. All rights reserved.

// Package policy applies lightweight governance to agent traffic:
// permission-scoped context injection, response filtering, and heuristic
// model routing between a cheap and an expert model.
package policy
