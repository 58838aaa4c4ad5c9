// Package search implements the semantic search pipeline: embed the query,
// retrieve vector matches, resolve documents, post-filter, rank, and
// optionally record the search for analytics.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/request"
	"github.com/atriumhq/docsearch/internal/domain/search/result"
	"github.com/atriumhq/docsearch/internal/domain/search/sortmode"
	"github.com/atriumhq/docsearch/internal/metrics"
	"github.com/atriumhq/docsearch/internal/repository/match"
)

// Service handles semantic document search.
type Service struct {
	embed    Embedder
	matches  MatchRepository
	docs     DocumentRepository
	activity ActivityRecorder
	logger   *zap.Logger
}

// New creates a search service.
func New(
	embed Embedder,
	matches MatchRepository,
	docs DocumentRepository,
	activity ActivityRecorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		embed:    embed,
		matches:  matches,
		docs:     docs,
		activity: activity,
		logger:   logger,
	}
}

// Response is the outcome of one search, echoing the effective parameters
// alongside the ranked results.
type Response struct {
	Query      string
	Results    []result.Result
	SearchedAt time.Time
	Filters    filterset.FilterSet
	SortBy     sortmode.Mode
}

// item pairs a ranked result with the document record it came from, so
// filtering can see attributes the result does not carry.
type item struct {
	doc domain.Document
	res result.Result
}

// Search runs the full pipeline for a validated request.
func (s *Service) Search(ctx context.Context, userID string, req *request.Request) (*Response, error) {
	searchedAt := time.Now().UTC()

	emb, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("search", "error").Inc()
		return nil, fail(domain.ErrEmbeddingFailure, "embed query", err)
	}

	matches, err := s.matches.Search(ctx, emb.Embedding, req.Threshold(), req.Count())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("search", "error").Inc()
		return nil, fail(domain.ErrVectorSearchFailure, "vector search", err)
	}

	items, err := s.resolve(ctx, matches, req.Threshold())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("search", "error").Inc()
		return nil, err
	}

	items = applyFilters(items, req.Filters())
	sortItems(items, req.SortBy())

	results := make([]result.Result, len(items))
	for i, it := range items {
		results[i] = it.res
	}

	metrics.SearchesTotal.WithLabelValues("search", "success").Inc()
	metrics.SearchResultCount.Observe(float64(len(results)))

	if req.LogSearch() {
		ev := domain.ActivityEvent{
			UserID:      userID,
			Query:       req.Query(),
			Filters:     req.Filters(),
			ResultCount: len(results),
			SearchedAt:  searchedAt,
		}
		go s.activity.Record(context.WithoutCancel(ctx), ev)
	}

	return &Response{
		Query:      req.Query(),
		Results:    results,
		SearchedAt: searchedAt,
		Filters:    req.Filters(),
		SortBy:     req.SortBy(),
	}, nil
}

// resolve groups matches by document, fetches the records in one round-trip
// and normalizes each group into a result.
func (s *Service) resolve(ctx context.Context, matches []match.Match, threshold float64) ([]item, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	ids, chunksByID := groupByDocument(matches)

	docs, err := s.docs.GetMulti(ctx, ids)
	if err != nil {
		return nil, fail(domain.ErrDocumentResolutionFailure, "resolve documents", err)
	}

	items := make([]item, len(docs))
	for i, doc := range docs {
		items[i] = item{
			doc: doc,
			res: result.FromMatches(doc, chunksByID[ids[i]], threshold),
		}
	}
	return items, nil
}

// groupByDocument collects matches per document id, preserving the order in
// which documents first appear (descending best similarity, since matches
// arrive sorted).
func groupByDocument(matches []match.Match) ([]string, map[string][]result.Chunk) {
	ids := make([]string, 0, len(matches))
	byID := make(map[string][]result.Chunk, len(matches))

	for _, m := range matches {
		if _, seen := byID[m.DocumentID]; !seen {
			ids = append(ids, m.DocumentID)
		}
		byID[m.DocumentID] = append(byID[m.DocumentID], result.Chunk{
			Index:      m.ChunkIndex,
			Content:    m.Content,
			Similarity: m.Similarity,
		})
	}
	return ids, byID
}

// fail wraps a pipeline stage error with its domain sentinel, mapping
// deadline expiry to ErrTimeout instead.
func fail(sentinel error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, sentinel, err)
}
