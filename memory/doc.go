// Copyright (c) Microsoft. All rights reserved.

// Package memory manages conversation history: fixed-window trimming,
// model-driven summarization, and a bounded registry mapping session ids to
// message stores.
//
// Trimming and summarization are [agentlab.ChatMiddleware], so they shape the
// transcript on every model round trip without touching what the session
// store persists:
//
//	agent := agentlab.NewAgent(client,
//	    agentlab.WithChatMiddleware(memory.TrimmingMiddleware()),
//	)
package memory
