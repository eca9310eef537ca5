// Copyright (c) Microsoft. All rights reserved.

package agentlab

import "context"

// ChatClient is the interface for interacting with an LLM backend.
// Provider packages (e.g., openai) implement this interface.
//
// Response is a synchronous, blocking round trip to the remote service;
// cancellation and timeouts are delegated to ctx and the provider's HTTP
// client configuration.
type ChatClient interface {
	Response(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)
}

// ChatClientFunc adapts a function to the [ChatClient] interface.
type ChatClientFunc func(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)

func (f ChatClientFunc) Response(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error) {
	return f(ctx, messages, opts)
}
