// Copyright (c) Microsoft. All rights reserved.

package vectorstore

import "context"

// Embedder turns texts into embedding vectors, one per input, in input
// order. *openai.Client satisfies this interface.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbedderFunc adapts a function to the [Embedder] interface.
type EmbedderFunc func(ctx context.Context, texts []string) ([][]float32, error)

func (f EmbedderFunc) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return f(ctx, texts)
}
