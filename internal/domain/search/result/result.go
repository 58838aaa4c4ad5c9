// Package result defines the canonical search result shape and the
// normalization of heterogeneous backend rows into it.
package result

// Chunk is a matching passage within a document.
type Chunk struct {
	Index      int
	Content    string
	Similarity float64
}

// Result is the canonical search result consumed by the transport and
// SDK layers. Every result has a non-empty ID and Title regardless of
// source; listing-sourced results carry Similarity 1 and no chunks.
type Result struct {
	ID             string
	Title          string
	Similarity     float64
	Highlight      string
	MatchingChunks []Chunk
	Tags           []string
	Category       string
	Subcategory    string
	CreatedAt      int64 // unix milliseconds, 0 when unknown
	UpdatedAt      int64
	Status         string
}
