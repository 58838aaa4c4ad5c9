// Package listing implements the attribute-only document listing used when
// filters are active but no query text is typed.
package listing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/result"
	"github.com/atriumhq/docsearch/internal/metrics"
)

// DefaultLimit bounds a listing when the caller does not specify one.
const DefaultLimit = 50

// Service handles filter-driven document listing.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a listing service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Response is the outcome of one listing.
type Response struct {
	Results    []result.Result
	SearchedAt time.Time
	Filters    filterset.FilterSet
}

// List returns documents matching the active filters, normalized into the
// same result shape the search pipeline produces. Role visibility is
// enforced here since the index query cannot express the fallback rule.
func (s *Service) List(ctx context.Context, filters filterset.FilterSet, limit int) (*Response, error) {
	searchedAt := time.Now().UTC()
	f := filters.Normalize()
	if limit <= 0 {
		limit = DefaultLimit
	}

	docs, err := s.repo.List(ctx, f, limit)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("listing", "error").Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list documents: %w: %w", domain.ErrTimeout, err)
		}
		return nil, fmt.Errorf("list documents: %w: %w", domain.ErrListingFailure, err)
	}

	results := make([]result.Result, 0, len(docs))
	for _, doc := range docs {
		if f.Role != "" && !visibleToRole(doc, f.Role) {
			continue
		}
		results = append(results, result.FromListing(doc))
	}

	metrics.SearchesTotal.WithLabelValues("listing", "success").Inc()

	return &Response{
		Results:    results,
		SearchedAt: searchedAt,
		Filters:    f,
	}, nil
}

func visibleToRole(doc domain.Document, role string) bool {
	if len(doc.VisibleRoles) > 0 {
		return slices.Contains(doc.VisibleRoles, role)
	}
	return doc.Role == role
}
