package search

import (
	"context"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/repository/match"
)

// MatchRepository retrieves chunk-level vector matches.
type MatchRepository interface {
	Search(ctx context.Context, vector []float32, threshold float64, count int) ([]match.Match, error)
}

// DocumentRepository resolves document records for matched ids.
type DocumentRepository interface {
	GetMulti(ctx context.Context, ids []string) ([]domain.Document, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ActivityRecorder records completed searches for analytics. Recording is
// fire-and-forget; failures never surface to the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, ev domain.ActivityEvent)
}
