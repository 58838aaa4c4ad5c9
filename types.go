package docsearch

import "time"

// All is the sentinel filter value meaning "not applied".
const All = "all"

// FilterSet selects documents by attribute. An empty value or the "all"
// sentinel means the filter is not applied. Field names match the wire
// format of the API.
type FilterSet struct {
	CategoryID    string `json:"categoryId,omitempty"`
	SubcategoryID string `json:"subcategoryId,omitempty"`
	TagID         string `json:"tagId,omitempty"`
	Role          string `json:"roleType,omitempty"`
}

// Normalize maps "all" sentinels to empty values.
func (f FilterSet) Normalize() FilterSet {
	return FilterSet{
		CategoryID:    applied(f.CategoryID),
		SubcategoryID: applied(f.SubcategoryID),
		TagID:         applied(f.TagID),
		Role:          applied(f.Role),
	}
}

// Active reports whether any filter is applied.
func (f FilterSet) Active() bool {
	n := f.Normalize()
	return n != FilterSet{}
}

// Equal reports whether two filter sets apply the same filters.
func (f FilterSet) Equal(other FilterSet) bool {
	return f.Normalize() == other.Normalize()
}

func applied(v string) string {
	if v == All {
		return ""
	}
	return v
}

// SearchRequest is the POST /search payload. Zero-valued optional fields
// take the server defaults.
type SearchRequest struct {
	Query          string    `json:"query"`
	Filters        FilterSet `json:"filters"`
	MatchThreshold *float64  `json:"match_threshold,omitempty"`
	MatchCount     *int      `json:"match_count,omitempty"`
	SortBy         string    `json:"sort_by,omitempty"`
	LogSearch      *bool     `json:"log_search,omitempty"`
}

// Chunk is one matched content fragment of a document.
type Chunk struct {
	Index      int     `json:"index"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// SearchResult is one ranked document in a search or listing response.
type SearchResult struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Similarity     float64  `json:"similarity"`
	Highlight      string   `json:"highlight"`
	MatchingChunks []Chunk  `json:"matching_chunks"`
	Tags           []string `json:"tags"`
	Category       string   `json:"category,omitempty"`
	Subcategory    string   `json:"subcategory,omitempty"`
	CreatedAt      int64    `json:"created_at,omitempty"`
	UpdatedAt      int64    `json:"updated_at,omitempty"`
	Status         string   `json:"status"`
}

// SearchResponse is the body of a successful search or listing call.
type SearchResponse struct {
	Success     bool           `json:"success"`
	Query       string         `json:"query,omitempty"`
	ResultCount int            `json:"result_count"`
	SearchedAt  time.Time      `json:"searched_at"`
	FiltersUsed FilterSet      `json:"filters_used"`
	SortBy      string         `json:"sort_by,omitempty"`
	Results     []SearchResult `json:"results"`
}
