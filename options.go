package docsearch

import (
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithUserID sets the user identity attached to searches for activity
// logging. Defaults to anonymous on the server side.
func WithUserID(id string) ClientOption {
	return func(c *Client) { c.userID = id }
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchDelay sets the keystroke debounce before a search fires.
func WithSearchDelay(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.searchDelay = d }
}

// WithLogDelay sets the longer debounce that marks a query as settled
// enough to record in the activity log.
func WithLogDelay(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.logDelay = d }
}

// WithRequestTimeout bounds each dispatched search or listing call.
func WithRequestTimeout(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.timeout = d }
}

// WithListLimit sets the maximum results for filter-only listings.
func WithListLimit(n int) SearcherOption {
	return func(s *Searcher) { s.listLimit = n }
}

// WithSortBy sets the sort mode sent with every search.
func WithSortBy(mode string) SearcherOption {
	return func(s *Searcher) { s.sortBy = mode }
}

// WithInitialQuery seeds the query and dispatches a search immediately,
// skipping the debounce. Used when the portal restores a previous search.
func WithInitialQuery(q string) SearcherOption {
	return func(s *Searcher) { s.initial = q }
}
