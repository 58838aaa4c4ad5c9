// Package sortmode defines the result ordering strategies.
package sortmode

// Mode selects how search results are ordered.
type Mode string

const (
	// Similarity orders by similarity score, descending.
	Similarity Mode = "similarity"
	// CreatedAt orders by creation timestamp, descending.
	CreatedAt Mode = "created_at"
	// Title orders by title, ascending, locale-aware.
	Title Mode = "title"
)

// IsValid reports whether m is a known sort mode.
func (m Mode) IsValid() bool {
	switch m {
	case Similarity, CreatedAt, Title:
		return true
	}
	return false
}
