package domain

import (
	"time"

	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
)

// ActivityEvent is a completed search recorded for analytics.
type ActivityEvent struct {
	ID          string
	UserID      string
	Query       string
	Filters     filterset.FilterSet
	ResultCount int
	SearchedAt  time.Time
}
