package chi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/request"
	healthuc "github.com/atriumhq/docsearch/internal/usecase/health"
	listinguc "github.com/atriumhq/docsearch/internal/usecase/listing"
	searchuc "github.com/atriumhq/docsearch/internal/usecase/search"
)

// mockSearch implements searchUseCase for tests.
type mockSearch struct {
	searchFn func(ctx context.Context, userID string, req *request.Request) (*searchuc.Response, error)
}

func (m *mockSearch) Search(ctx context.Context, userID string, req *request.Request) (*searchuc.Response, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, userID, req)
	}
	return &searchuc.Response{SearchedAt: time.Now().UTC()}, nil
}

// mockListing implements listingUseCase for tests.
type mockListing struct {
	listFn func(ctx context.Context, filters filterset.FilterSet, limit int) (*listinguc.Response, error)
}

func (m *mockListing) List(ctx context.Context, filters filterset.FilterSet, limit int) (*listinguc.Response, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters, limit)
	}
	return &listinguc.Response{SearchedAt: time.Now().UTC()}, nil
}

// mockHealth implements healthUseCase for tests.
type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	if m.report.Checks == nil {
		return healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
		}
	}
	return m.report
}

type testDeps struct {
	search  *mockSearch
	listing *mockListing
	health  *mockHealth
}

func newTestServer(t *testing.T) (*httptest.Server, *testDeps) {
	t.Helper()
	deps := &testDeps{
		search:  &mockSearch{},
		listing: &mockListing{},
		health:  &mockHealth{},
	}
	srv := NewServer(deps.search, deps.listing, deps.health, time.Second, zap.NewNop())

	r := gochi.NewRouter()
	srv.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, deps
}
