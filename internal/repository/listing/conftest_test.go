package listing

import (
	"context"
	"testing"

	"github.com/atriumhq/docsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTagsFn func(ctx context.Context, q *db.TagQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchTags(ctx context.Context, q *db.TagQuery) (*db.SearchResult, error) {
	if m.searchTagsFn != nil {
		return m.searchTagsFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
