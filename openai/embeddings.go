// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	al "github.com/microsoft/agentlab/agentlab"
)

const defaultEmbeddingModel = "text-embedding-3-small"

// embeddingRequest is the OpenAI Embeddings API request body.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingResponse is the OpenAI Embeddings API response.
type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage *usage `json:"usage,omitempty"`
}

// Embed requests embedding vectors for the given texts. The returned slice
// has one vector per input text, in input order. The model is chosen with
// [WithEmbeddingModel] and defaults to text-embedding-3-small.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := c.embeddingModel
	if model == "" {
		model = defaultEmbeddingModel
	}

	resp, err := c.tp.do(ctx, "POST", "/embeddings", &embeddingRequest{
		Model: model,
		Input: texts,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", al.ErrService, err)
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse embeddings response: %v", al.ErrService, err)
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("%w: embeddings response has %d vectors for %d inputs",
			al.ErrInvalidResponse, len(parsed.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("%w: embedding index %d out of range", al.ErrInvalidResponse, d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
