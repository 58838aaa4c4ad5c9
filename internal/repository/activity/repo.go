// Package activity persists search activity events to the analytics stream.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/atriumhq/docsearch/internal/domain"
)

// store is the consumer interface for activity recording (ISP).
type store interface {
	XAdd(ctx context.Context, stream string, fields map[string]string) (string, error)
}

// Repo implements usecase/activity.Repository.
type Repo struct {
	store store
}

// New creates an activity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Append writes one event to the activity stream.
func (r *Repo) Append(ctx context.Context, ev domain.ActivityEvent) error {
	filters, err := json.Marshal(ev.Filters)
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}

	fields := map[string]string{
		"event_id":     ev.ID,
		"user_id":      ev.UserID,
		"query":        ev.Query,
		"filters":      string(filters),
		"result_count": strconv.Itoa(ev.ResultCount),
		"searched_at":  strconv.FormatInt(ev.SearchedAt.UnixMilli(), 10),
	}

	if _, err := r.store.XAdd(ctx, domain.ActivityStream, fields); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}
