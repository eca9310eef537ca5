// Copyright (c) Microsoft. All rights reserved.

package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// SearchResult pairs a document with its cosine similarity to the query,
// in [-1, 1] with 1 meaning identical direction.
type SearchResult struct {
	Document Document
	Score    float32
}

// SearchOption narrows a similarity search.
type SearchOption func(*searchConfig)

type searchConfig struct {
	threshold *float32
	filter    map[string]string
}

// WithScoreThreshold drops results scoring below min.
func WithScoreThreshold(min float32) SearchOption {
	return func(c *searchConfig) { c.threshold = &min }
}

// WithMetadataFilter keeps only documents whose metadata contains every
// given key with exactly the given value.
func WithMetadataFilter(filter map[string]string) SearchOption {
	return func(c *searchConfig) { c.filter = filter }
}

type storedDoc struct {
	doc Document
	vec []float32
}

// Store is an in-memory vector store. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	embedder Embedder
	docs     []storedDoc
}

// NewStore creates an empty in-memory store that embeds with embedder.
func NewStore(embedder Embedder) *Store {
	return &Store{embedder: embedder}
}

// Add embeds and stores documents. Documents without an ID are assigned one.
func (s *Store) Add(ctx context.Context, docs ...Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Content
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(docs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range docs {
		doc := docs[i]
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		s.docs = append(s.docs, storedDoc{doc: doc, vec: vectors[i]})
	}
	return nil
}

// Len reports how many documents the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// SimilaritySearch returns up to k documents ranked by descending cosine
// similarity to the query.
func (s *Store) SimilaritySearch(ctx context.Context, query string, k int, opts ...SearchOption) ([]SearchResult, error) {
	queryVec, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	cfg := &searchConfig{}
	for _, o := range opts {
		o(cfg)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return rank(s.docs, queryVec, k, cfg), nil
}

// MMRSearch returns up to k documents selected by maximal marginal
// relevance: the fetchK most similar candidates are re-ranked to trade
// relevance against diversity. lambda 1 is pure relevance, 0 pure diversity.
func (s *Store) MMRSearch(ctx context.Context, query string, k, fetchK int, lambda float32) ([]SearchResult, error) {
	if fetchK < k {
		fetchK = k
	}

	queryVec, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	candidates := rank(s.docs, queryVec, fetchK, &searchConfig{})
	vecs := make(map[string][]float32, len(candidates))
	for _, d := range s.docs {
		vecs[d.doc.ID] = d.vec
	}
	s.mu.RUnlock()

	return mmrSelect(candidates, vecs, k, lambda), nil
}

func (s *Store) embedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for the query", len(vectors))
	}
	return vectors[0], nil
}

// rank scores all docs against queryVec and returns the top k passing the config.
func rank(docs []storedDoc, queryVec []float32, k int, cfg *searchConfig) []SearchResult {
	results := make([]SearchResult, 0, len(docs))
	for _, d := range docs {
		if !matchesFilter(d.doc.Metadata, cfg.filter) {
			continue
		}
		score := CosineSimilarity(queryVec, d.vec)
		if cfg.threshold != nil && score < *cfg.threshold {
			continue
		}
		results = append(results, SearchResult{Document: d.doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}

// mmrSelect greedily picks k results maximizing
// lambda*sim(query, d) - (1-lambda)*max(sim(d, already picked)).
func mmrSelect(candidates []SearchResult, vecs map[string][]float32, k int, lambda float32) []SearchResult {
	if k > len(candidates) {
		k = len(candidates)
	}

	selected := make([]SearchResult, 0, k)
	remaining := append([]SearchResult(nil), candidates...)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestScore := float32(math.Inf(-1))

		for i, cand := range remaining {
			// Max similarity to the already-selected set. May be negative,
			// so seed from the first comparison rather than zero.
			var redundancy float32
			for j, sel := range selected {
				sim := CosineSimilarity(vecs[cand.Document.ID], vecs[sel.Document.ID])
				if j == 0 || sim > redundancy {
					redundancy = sim
				}
			}
			score := lambda*cand.Score - (1-lambda)*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

func matchesFilter(metadata, filter map[string]string) bool {
	for k, want := range filter {
		if metadata[k] != want {
			return false
		}
	}
	return true
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
