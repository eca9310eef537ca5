// Copyright (c) Microsoft. All rights reserved.

// Package vectorstore implements document retrieval over embedding vectors:
// text splitting, an embedder abstraction, an in-memory store with cosine
// similarity search (scores, thresholds, metadata filters, MMR), and a
// SQLite-backed store for retrieval corpora that persist across runs.
//
//	store := vectorstore.NewStore(client) // *openai.Client satisfies Embedder
//	_ = store.Add(ctx, vectorstore.Document{Content: "LangGraph manages state."})
//	results, _ := store.SimilaritySearch(ctx, "how is state managed?", 3)
package vectorstore
