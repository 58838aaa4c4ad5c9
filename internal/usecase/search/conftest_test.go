package search

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/repository/match"
)

// mockEmbedder implements Embedder for tests.
type mockEmbedder struct {
	embedFn func(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}, nil
}

// mockMatches implements MatchRepository for tests.
type mockMatches struct {
	searchFn func(ctx context.Context, vector []float32, threshold float64, count int) ([]match.Match, error)
}

func (m *mockMatches) Search(ctx context.Context, vector []float32, threshold float64, count int) ([]match.Match, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, vector, threshold, count)
	}
	return nil, nil
}

// mockDocs implements DocumentRepository for tests.
type mockDocs struct {
	getMultiFn func(ctx context.Context, ids []string) ([]domain.Document, error)
}

func (m *mockDocs) GetMulti(ctx context.Context, ids []string) ([]domain.Document, error) {
	if m.getMultiFn != nil {
		return m.getMultiFn(ctx, ids)
	}
	docs := make([]domain.Document, len(ids))
	for i, id := range ids {
		docs[i] = domain.Document{ID: id, Title: "Doc " + id}
	}
	return docs, nil
}

// mockActivity implements ActivityRecorder for tests.
type mockActivity struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	done   chan struct{}
}

func newMockActivity() *mockActivity {
	return &mockActivity{done: make(chan struct{}, 8)}
}

func (m *mockActivity) Record(_ context.Context, ev domain.ActivityEvent) {
	m.mu.Lock()
	m.events = append(m.events, ev)
	m.mu.Unlock()
	m.done <- struct{}{}
}

func (m *mockActivity) recorded() []domain.ActivityEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ActivityEvent(nil), m.events...)
}

type testDeps struct {
	embed    *mockEmbedder
	matches  *mockMatches
	docs     *mockDocs
	activity *mockActivity
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		embed:    &mockEmbedder{},
		matches:  &mockMatches{},
		docs:     &mockDocs{},
		activity: newMockActivity(),
	}
	svc := New(deps.embed, deps.matches, deps.docs, deps.activity, zap.NewNop())
	return svc, deps
}
