// Package activity records completed searches for analytics. Recording is
// best-effort: failures are logged and counted, never surfaced.
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/metrics"
)

// Repository persists activity events.
type Repository interface {
	Append(ctx context.Context, ev domain.ActivityEvent) error
}

// Service implements usecase/search.ActivityRecorder.
type Service struct {
	repo    Repository
	timeout time.Duration
	logger  *zap.Logger
}

// New creates an activity service. timeout bounds each append since Record
// runs outside any request deadline.
func New(repo Repository, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{repo: repo, timeout: timeout, logger: logger}
}

// Record assigns the event an id and timestamp if missing and appends it.
func (s *Service) Record(ctx context.Context, ev domain.ActivityEvent) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.SearchedAt.IsZero() {
		ev.SearchedAt = time.Now().UTC()
	}
	if ev.UserID == "" {
		ev.UserID = "anonymous"
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Append(ctx, ev); err != nil {
		metrics.ActivityLogFailures.Inc()
		s.logger.Warn("Failed to record search activity",
			zap.String("event_id", ev.ID),
			zap.String("user_id", ev.UserID),
			zap.Error(err),
		)
	}
}
