// Package request holds validated search parameters.
package request

import (
	"fmt"

	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/sortmode"
)

// Search parameter defaults and limits.
const (
	DefaultThreshold = 0.5
	DefaultCount     = 10
	MaxCount         = 100
)

// Request is a validated search query.
type Request struct {
	query     string
	filters   filterset.FilterSet
	threshold float64
	count     int
	sortBy    sortmode.Mode
	logSearch bool
}

// New validates and normalizes search parameters. The query text must
// already be validated (non-empty, trimmed). Defaults: threshold=0.5,
// count=10, sort=similarity. Count is clamped to MaxCount.
func New(
	queryText string,
	filters filterset.FilterSet,
	threshold float64,
	count int,
	sortBy sortmode.Mode,
	logSearch bool,
) (Request, error) {
	if queryText == "" {
		return Request{}, fmt.Errorf("query text is required")
	}
	if threshold < 0 || threshold > 1 {
		return Request{}, fmt.Errorf("match_threshold must be between 0 and 1")
	}
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if count <= 0 {
		count = DefaultCount
	}
	if count > MaxCount {
		count = MaxCount
	}
	if sortBy == "" {
		sortBy = sortmode.Similarity
	}
	if !sortBy.IsValid() {
		return Request{}, fmt.Errorf("invalid sort_by: %q", sortBy)
	}

	return Request{
		query:     queryText,
		filters:   filters.Normalize(),
		threshold: threshold,
		count:     count,
		sortBy:    sortBy,
		logSearch: logSearch,
	}, nil
}

// Query returns the validated query text.
func (r *Request) Query() string { return r.query }

// Filters returns the normalized attribute filters.
func (r *Request) Filters() filterset.FilterSet { return r.filters }

// Threshold returns the minimum passage similarity.
func (r *Request) Threshold() float64 { return r.threshold }

// Count returns the maximum number of vector matches to retrieve.
func (r *Request) Count() int { return r.count }

// SortBy returns the result ordering strategy.
func (r *Request) SortBy() sortmode.Mode { return r.sortBy }

// LogSearch reports whether this search should be recorded for analytics.
func (r *Request) LogSearch() bool { return r.logSearch }
