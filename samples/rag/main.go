// Copyright (c) Microsoft. All rights reserved.

// Command rag builds a small retrieval pipeline: split documents into chunks,
// embed them, search with scores, metadata filters, and MMR, then let an
// agent answer questions grounded in the retrieved context. The corpus is
// also persisted to SQLite so later runs skip re-embedding.
//
// Usage:
//
//	export OPENAI_API_KEY=sk-...
//	go run .
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	al "github.com/microsoft/agentlab/agentlab"
	"github.com/microsoft/agentlab/openai"
	"github.com/microsoft/agentlab/vectorstore"
)

const corpusPath = "corpus.db"

var knowledgeBase = []vectorstore.Document{
	{ID: "langgraph", Metadata: map[string]string{"source": "docs"},
		Content: "LangGraph is a framework for building stateful agents. It manages " +
			"conversation state in a graph of nodes, where each node can call models, " +
			"tools, or custom code. Checkpointing lets a graph resume where it left off."},
	{ID: "embeddings", Metadata: map[string]string{"source": "docs"},
		Content: "Embeddings map text to vectors so that semantically similar texts are " +
			"close together. Cosine similarity between vectors is the standard relevance " +
			"score for retrieval, with 1.0 meaning identical direction."},
	{ID: "retrieval", Metadata: map[string]string{"source": "blog"},
		Content: "Retrieval-augmented generation fetches the most relevant documents for a " +
			"query and injects them into the prompt. Maximal marginal relevance re-ranks " +
			"results to reduce redundancy while keeping them relevant."},
}

func main() {
	_ = godotenv.Load()
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY to run this sample.")
		os.Exit(1)
	}
	client := openai.New(apiKey,
		openai.WithModel("gpt-4o-mini"),
		openai.WithEmbeddingModel("text-embedding-3-small"),
	)
	ctx := context.Background()

	// Split documents into overlapping chunks and embed them.
	splitter := vectorstore.Splitter{ChunkSize: 200, ChunkOverlap: 20}
	chunks := splitter.SplitDocuments(knowledgeBase)
	fmt.Printf("Split %d documents into %d chunks.\n", len(knowledgeBase), len(chunks))

	memStore := vectorstore.NewStore(client)
	if err := memStore.Add(ctx, chunks...); err != nil {
		log.Fatalf("embed corpus: %v", err)
	}

	// Search with scores, a metadata filter, and MMR.
	query := "How does similarity search decide relevance?"
	fmt.Printf("\nQuery: %s\n", query)

	results, err := memStore.SimilaritySearch(ctx, query, 3,
		vectorstore.WithScoreThreshold(0.2))
	if err != nil {
		log.Fatalf("similarity search: %v", err)
	}
	for _, r := range results {
		fmt.Printf("  [%.3f] (%s) %.60s...\n", r.Score, r.Document.Metadata["source"], r.Document.Content)
	}

	diverse, err := memStore.MMRSearch(ctx, query, 2, 6, 0.7)
	if err != nil {
		log.Fatalf("mmr search: %v", err)
	}
	fmt.Println("MMR picks:")
	for _, r := range diverse {
		fmt.Printf("  [%.3f] %.60s...\n", r.Score, r.Document.Content)
	}

	// Persist the corpus so another run (or program) can reuse it.
	sqlStore, err := vectorstore.OpenSQLite(corpusPath, client)
	if err != nil {
		log.Fatalf("open %s: %v", corpusPath, err)
	}
	defer sqlStore.Close()
	if n, err := sqlStore.Len(ctx); err == nil && n == 0 {
		if err := sqlStore.Add(ctx, chunks...); err != nil {
			log.Fatalf("persist corpus: %v", err)
		}
		fmt.Printf("\nPersisted %d chunks to %s.\n", len(chunks), corpusPath)
	} else {
		fmt.Printf("\nReusing %d chunks already in %s.\n", n, corpusPath)
	}

	// Ground an agent's answer in the retrieved chunks.
	var contextText strings.Builder
	for _, r := range results {
		contextText.WriteString("- ")
		contextText.WriteString(r.Document.Content)
		contextText.WriteString("\n")
	}

	agent := al.NewAgent(client,
		al.WithName("rag_agent"),
		al.WithInstructions("Answer using ONLY the provided context. "+
			"If the context does not contain the answer, say so.\n\nContext:\n"+contextText.String()),
	)

	answer, err := agent.RunText(ctx, query)
	if err != nil {
		log.Fatalf("rag agent: %v", err)
	}
	fmt.Printf("\nAgent: %s\n", answer)
}
