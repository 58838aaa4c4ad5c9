// Package match retrieves chunk-level vector matches from the store.
package match

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atriumhq/docsearch/internal/db"
	"github.com/atriumhq/docsearch/internal/domain"
)

// store is the consumer interface for chunk search (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Match is a single chunk hit from the vector index.
type Match struct {
	DocumentID string
	ChunkIndex int
	Content    string
	Similarity float64
}

// Repo implements usecase/search.MatchRepository.
type Repo struct {
	store store
}

// New creates a match repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs a KNN search over the chunk index and returns matches at or
// above threshold, ordered by descending similarity.
func (r *Repo) Search(ctx context.Context, vector []float32, threshold float64, count int) ([]Match, error) {
	q := &db.KNNQuery{
		IndexName:    domain.ChunkIndexName,
		Vector:       vector,
		K:            count,
		ReturnFields: []string{"doc_id", "chunk_index", "content"},
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	matches := make([]Match, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if entry.Score < threshold {
			continue
		}
		matches = append(matches, parseEntry(entry))
	}

	return matches, nil
}

// parseEntry builds a Match from a search entry, falling back to the key
// layout "docsearch:chunk:<doc_id>:<index>" for fields the index did not
// return.
func parseEntry(entry db.SearchEntry) Match {
	m := Match{
		DocumentID: entry.Fields["doc_id"],
		Content:    entry.Fields["content"],
		Similarity: entry.Score,
	}

	if idx, err := strconv.Atoi(entry.Fields["chunk_index"]); err == nil {
		m.ChunkIndex = idx
	}

	if m.DocumentID == "" {
		rest := strings.TrimPrefix(entry.Key, domain.KeyPrefix+"chunk:")
		if i := strings.LastIndex(rest, ":"); i > 0 {
			m.DocumentID = rest[:i]
			if idx, err := strconv.Atoi(rest[i+1:]); err == nil {
				m.ChunkIndex = idx
			}
		}
	}

	return m
}
