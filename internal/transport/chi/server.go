// Package chi exposes the search API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/query"
	"github.com/atriumhq/docsearch/internal/domain/search/request"
	"github.com/atriumhq/docsearch/internal/domain/search/result"
	"github.com/atriumhq/docsearch/internal/domain/search/sortmode"
	healthuc "github.com/atriumhq/docsearch/internal/usecase/health"
	listinguc "github.com/atriumhq/docsearch/internal/usecase/listing"
	searchuc "github.com/atriumhq/docsearch/internal/usecase/search"
	"github.com/atriumhq/docsearch/internal/version"
)

// DefaultRequestTimeout bounds one search or listing request end to end.
const DefaultRequestTimeout = 15 * time.Second

// searchUseCase runs the semantic search pipeline.
type searchUseCase interface {
	Search(ctx context.Context, userID string, req *request.Request) (*searchuc.Response, error)
}

// listingUseCase lists documents by attribute filters.
type listingUseCase interface {
	List(ctx context.Context, filters filterset.FilterSet, limit int) (*listinguc.Response, error)
}

// healthUseCase aggregates component health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Server handles the HTTP API.
type Server struct {
	search  searchUseCase
	listing listingUseCase
	health  healthUseCase
	timeout time.Duration
	logger  *zap.Logger
}

// NewServer creates an HTTP API server. timeout <= 0 uses DefaultRequestTimeout.
func NewServer(
	search searchUseCase,
	listing listingUseCase,
	health healthUseCase,
	timeout time.Duration,
	logger *zap.Logger,
) *Server {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Server{
		search:  search,
		listing: listing,
		health:  health,
		timeout: timeout,
		logger:  logger,
	}
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Post("/listing", s.handleListing)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
}

// --- Wire types ---

// searchRequestBody is the POST /search payload. Query is typed any so
// non-string values reject with a validation error instead of a decode error.
type searchRequestBody struct {
	Query          any                 `json:"query"`
	Filters        filterset.FilterSet `json:"filters"`
	MatchThreshold *float64            `json:"match_threshold"`
	MatchCount     *int                `json:"match_count"`
	SortBy         string              `json:"sort_by"`
	LogSearch      *bool               `json:"log_search"`
}

type listingRequestBody struct {
	Filters filterset.FilterSet `json:"filters"`
	Limit   int                 `json:"limit"`
}

type chunkWire struct {
	Index      int     `json:"index"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

type resultWire struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Similarity     float64     `json:"similarity"`
	Highlight      string      `json:"highlight"`
	MatchingChunks []chunkWire `json:"matching_chunks"`
	Tags           []string    `json:"tags"`
	Category       string      `json:"category,omitempty"`
	Subcategory    string      `json:"subcategory,omitempty"`
	CreatedAt      int64       `json:"created_at,omitempty"`
	UpdatedAt      int64       `json:"updated_at,omitempty"`
	Status         string      `json:"status"`
}

type searchEnvelope struct {
	Success     bool                `json:"success"`
	Query       string              `json:"query,omitempty"`
	ResultCount int                 `json:"result_count"`
	SearchedAt  time.Time           `json:"searched_at"`
	FiltersUsed filterset.FilterSet `json:"filters_used"`
	SortBy      string              `json:"sort_by,omitempty"`
	Results     []resultWire        `json:"results"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Handlers ---

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	queryText, err := query.Validate(body.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	threshold := 0.0
	if body.MatchThreshold != nil {
		threshold = *body.MatchThreshold
	}
	count := 0
	if body.MatchCount != nil {
		count = *body.MatchCount
	}
	logSearch := true
	if body.LogSearch != nil {
		logSearch = *body.LogSearch
	}

	req, err := request.New(
		queryText, body.Filters, threshold, count, sortmode.Mode(body.SortBy), logSearch,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	resp, err := s.search.Search(ctx, userID(r), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchEnvelope{
		Success:     true,
		Query:       resp.Query,
		ResultCount: len(resp.Results),
		SearchedAt:  resp.SearchedAt,
		FiltersUsed: resp.Filters,
		SortBy:      string(resp.SortBy),
		Results:     resultsToWire(resp.Results),
	})
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	var body listingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	resp, err := s.listing.List(ctx, body.Filters, body.Limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchEnvelope{
		Success:     true,
		ResultCount: len(resp.Results),
		SearchedAt:  resp.SearchedAt,
		FiltersUsed: resp.Filters,
		Results:     resultsToWire(resp.Results),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":  report.Status,
		"checks":  report.Checks,
		"version": version.String(),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- Errors ---

// handleDomainError maps pipeline sentinels to HTTP responses. Validation
// errors echo their message; backend failures get a stable generic message
// so internals never leak to the portal.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrTimeout):
		s.logger.Error("request timed out", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search timed out")
	case errors.Is(err, domain.ErrEmbeddingFailure),
		errors.Is(err, domain.ErrVectorSearchFailure),
		errors.Is(err, domain.ErrDocumentResolutionFailure):
		s.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search failed")
	case errors.Is(err, domain.ErrListingFailure):
		s.logger.Error("listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "listing failed")
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// validationMessage picks the stable client-facing text for query rejections.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, query.ErrNotString):
		return "query must be a string"
	case errors.Is(err, query.ErrEmpty):
		return "query must not be empty"
	default:
		return "invalid query"
	}
}

// --- Helpers ---

func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return id
	}
	return "anonymous"
}

func resultsToWire(results []result.Result) []resultWire {
	out := make([]resultWire, len(results))
	for i, res := range results {
		chunks := make([]chunkWire, len(res.MatchingChunks))
		for j, c := range res.MatchingChunks {
			chunks[j] = chunkWire{Index: c.Index, Content: c.Content, Similarity: c.Similarity}
		}
		out[i] = resultWire{
			ID:             res.ID,
			Title:          res.Title,
			Similarity:     res.Similarity,
			Highlight:      res.Highlight,
			MatchingChunks: chunks,
			Tags:           res.Tags,
			Category:       res.Category,
			Subcategory:    res.Subcategory,
			CreatedAt:      res.CreatedAt,
			UpdatedAt:      res.UpdatedAt,
			Status:         res.Status,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: message})
}
