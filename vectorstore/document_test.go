// Copyright (c) Microsoft. All rights reserved.

package vectorstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/agentlab/vectorstore"
)

func TestSplitter_ShortTextSingleChunk(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 50, ChunkOverlap: 5}
	chunks := s.Split("LangGraph manages agent state.")
	require.Len(t, chunks, 1)
	assert.Equal(t, "LangGraph manages agent state.", chunks[0])
}

func TestSplitter_ChunksRespectSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 10)
	s := vectorstore.Splitter{ChunkSize: 50, ChunkOverlap: 10}

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 3)

	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 50, "chunk too long: %q", c)
		assert.Equal(t, strings.TrimSpace(c), c)
		assert.NotEmpty(t, c)
	}

	// All input words survive splitting.
	joined := strings.Join(chunks, " ")
	for _, w := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		assert.Contains(t, joined, w)
	}
}

func TestSplitter_BreaksOnWhitespace(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 12, ChunkOverlap: 0}
	chunks := s.Split("hello world again")

	for _, c := range chunks {
		for _, w := range strings.Fields(c) {
			assert.Contains(t, []string{"hello", "world", "again"}, w, "word was split: %q", w)
		}
	}
}

func TestSplitter_NoWhitespaceFallsBackToHardCut(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 10, ChunkOverlap: 0}
	chunks := s.Split(strings.Repeat("x", 25))
	require.Len(t, chunks, 3)
	assert.Equal(t, 10, len(chunks[0]))
}

func TestSplitter_TextEndsExactlyOnChunkBoundary(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 5, ChunkOverlap: 0}
	assert.Equal(t, []string{"abcde"}, s.Split("abcde"))
	assert.Equal(t, []string{"abcde", "fghij"}, s.Split("abcdefghij"))
}

func TestSplitter_Empty(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 50}
	assert.Empty(t, s.Split(""))
	assert.Empty(t, s.Split("   \n  "))
}

func TestSplitDocuments_InheritsMetadata(t *testing.T) {
	s := vectorstore.Splitter{ChunkSize: 20, ChunkOverlap: 0}
	docs := s.SplitDocuments([]vectorstore.Document{{
		ID:       "guide-1",
		Content:  "one two three four five six seven eight nine ten",
		Metadata: map[string]string{"source": "guide"},
	}})

	require.Greater(t, len(docs), 1)
	for _, d := range docs {
		assert.Equal(t, "guide", d.Metadata["source"])
		assert.Equal(t, "guide-1", d.Metadata["parent"])
		assert.Empty(t, d.ID, "chunk IDs are assigned by the store")
	}
}
