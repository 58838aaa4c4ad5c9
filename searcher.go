package docsearch

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Timing defaults for the input orchestration. The search debounce keeps
// the API quiet while the user is still typing; the log debounce is longer
// so only queries the user actually settled on reach the activity log.
const (
	DefaultSearchDelay    = 500 * time.Millisecond
	DefaultLogDelay       = 2 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultListLimit      = 50
)

// State describes what the Searcher is currently doing.
type State string

const (
	// StateIdle means no request is in flight.
	StateIdle State = "idle"
	// StateListing means a filter-only listing is in flight.
	StateListing State = "listing"
	// StateSearching means a semantic search is in flight.
	StateSearching State = "searching"
	// StateError means the last request failed.
	StateError State = "error"
)

// Update is delivered to the Searcher's callback on every state change.
// Response is set when a request completed, Err when it failed.
type Update struct {
	State    State
	Response *SearchResponse
	Err      error
}

// searchAPI is the slice of Client the Searcher needs.
type searchAPI interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	List(ctx context.Context, filters FilterSet, limit int) (*SearchResponse, error)
}

// Searcher orchestrates search input the way the portal's search box does.
// SetQuery on every keystroke; the Searcher debounces, dispatches, decides
// when to log, and drops responses that no longer match the current input.
//
// The update callback runs on the Searcher's own goroutines and must not
// call back into the Searcher.
type Searcher struct {
	api    searchAPI
	update func(Update)

	searchDelay time.Duration
	logDelay    time.Duration
	timeout     time.Duration
	listLimit   int
	sortBy      string
	initial     string

	mu          sync.Mutex
	query       string
	debounced   string
	filters     FilterSet
	lastLogged  string
	shouldLog   bool
	generation  uint64
	searchTimer *time.Timer
	logTimer    *time.Timer
	closed      bool
}

// NewSearcher creates a Searcher delivering state changes to update.
func NewSearcher(api searchAPI, update func(Update), opts ...SearcherOption) *Searcher {
	s := &Searcher{
		api:         api,
		update:      update,
		searchDelay: DefaultSearchDelay,
		logDelay:    DefaultLogDelay,
		timeout:     DefaultRequestTimeout,
		listLimit:   DefaultListLimit,
	}
	for _, o := range opts {
		o(s)
	}

	// A seeded query dispatches immediately; there is nothing to debounce
	// when the input did not come from keystrokes.
	if s.initial != "" {
		s.mu.Lock()
		s.query = s.initial
		s.debounced = s.initial
		s.evaluateLocked()
		s.mu.Unlock()
	}
	return s
}

// SetQuery records the current input text and restarts both debounce
// timers. The search fires after the short delay, the activity-log mark
// after the long one.
func (s *Searcher) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.query = q
	s.restartTimersLocked()
}

// SetFilters applies a new filter set. Unlike typing, a filter change is a
// deliberate action, so it re-evaluates immediately without debouncing.
// No-op if the filters are structurally unchanged.
func (s *Searcher) SetFilters(f FilterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.filters.Equal(f) {
		return
	}
	s.filters = f
	s.evaluateLocked()
}

// Clear resets the input, cancels pending work, and reports idle.
func (s *Searcher) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopTimersLocked()
	s.query = ""
	s.debounced = ""
	s.lastLogged = ""
	s.shouldLog = false
	s.generation++
	s.emitLocked(Update{State: StateIdle})
}

// Close stops the Searcher. Pending timers are cancelled and in-flight
// responses are dropped.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.closed = true
	s.stopTimersLocked()
	s.generation++
}

func (s *Searcher) restartTimersLocked() {
	s.stopTimersLocked()
	s.searchTimer = time.AfterFunc(s.searchDelay, s.onSearchSettled)
	s.logTimer = time.AfterFunc(s.logDelay, s.onLogSettled)
}

func (s *Searcher) stopTimersLocked() {
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	if s.logTimer != nil {
		s.logTimer.Stop()
		s.logTimer = nil
	}
}

// onSearchSettled fires when the input has been quiet for the search delay.
func (s *Searcher) onSearchSettled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.debounced = s.query
	s.evaluateLocked()
}

// onLogSettled fires when the input has been quiet for the log delay.
// The settled query is re-dispatched with logging enabled, unless it was
// already the last one logged.
func (s *Searcher) onLogSettled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	settled := strings.TrimSpace(s.query)
	if settled == "" || settled == s.lastLogged {
		return
	}
	s.shouldLog = true
	s.debounced = s.query
	s.evaluateLocked()
}

// evaluateLocked decides what the current input calls for and dispatches
// it. Bumping the generation first invalidates any in-flight request.
func (s *Searcher) evaluateLocked() {
	s.generation++
	gen := s.generation

	q := strings.TrimSpace(s.debounced)
	switch {
	case q != "":
		logThis := s.shouldLog
		if logThis {
			s.shouldLog = false
			s.lastLogged = q
		}
		s.emitLocked(Update{State: StateSearching})
		go s.dispatchSearch(gen, q, s.filters, logThis)
	case s.filters.Active():
		s.emitLocked(Update{State: StateListing})
		go s.dispatchList(gen, s.filters)
	default:
		s.emitLocked(Update{State: StateIdle})
	}
}

func (s *Searcher) dispatchSearch(gen uint64, q string, filters FilterSet, logThis bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.api.Search(ctx, SearchRequest{
		Query:     q,
		Filters:   filters,
		SortBy:    s.sortBy,
		LogSearch: &logThis,
	})
	s.deliver(gen, resp, err)
}

func (s *Searcher) dispatchList(gen uint64, filters FilterSet) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.api.List(ctx, filters, s.listLimit)
	s.deliver(gen, resp, err)
}

// deliver publishes a completed request unless the input moved on while it
// was in flight.
func (s *Searcher) deliver(gen uint64, resp *SearchResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.generation {
		return
	}

	if err != nil {
		s.emitLocked(Update{State: StateError, Err: err})
		return
	}
	s.emitLocked(Update{State: StateIdle, Response: resp})
}

func (s *Searcher) emitLocked(u Update) {
	if s.update != nil {
		s.update(u)
	}
}
