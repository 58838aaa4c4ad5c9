package result

import (
	"sort"

	"github.com/google/uuid"

	"github.com/atriumhq/docsearch/internal/domain"
)

// HighlightMaxLen bounds the highlight excerpt length in characters.
const HighlightMaxLen = 300

// FromMatches builds a Result from a resolved document and its matching
// passages. The document's similarity is the maximum across its passages
// ("best evidence", not an average). Only passages at or above threshold
// are kept, sorted descending by similarity; the highlight comes from the
// single best passage, truncated to HighlightMaxLen with an ellipsis.
func FromMatches(doc domain.Document, chunks []Chunk, threshold float64) Result {
	kept := make([]Chunk, 0, len(chunks))
	best := 0.0
	var bestContent string
	for _, c := range chunks {
		if c.Similarity > best {
			best = c.Similarity
			bestContent = c.Content
		}
		if c.Similarity >= threshold {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Similarity > kept[j].Similarity
	})

	r := fromDocument(doc)
	r.Similarity = best
	r.Highlight = truncate(bestContent)
	r.MatchingChunks = kept
	return r
}

// FromListing builds a Result from an attribute-listing row. No similarity
// signal exists for these, so they carry a fixed similarity of 1 to sort
// consistently with perfect matches; the highlight is whatever short
// preview the listing backend provides.
func FromListing(doc domain.Document) Result {
	r := fromDocument(doc)
	r.Similarity = 1
	r.Highlight = doc.Preview
	r.MatchingChunks = []Chunk{}
	return r
}

func fromDocument(doc domain.Document) Result {
	id := doc.ID
	if id == "" {
		// Never emit a result without an id.
		id = uuid.NewString()
	}
	title := doc.Title
	if title == "" {
		title = domain.DefaultTitle
	}
	status := doc.Status
	if status == "" {
		status = domain.StatusComplete
	}
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return Result{
		ID:          id,
		Title:       title,
		Tags:        tags,
		Category:    doc.Category,
		Subcategory: doc.Subcategory,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Status:      status,
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= HighlightMaxLen {
		return s
	}
	return string(runes[:HighlightMaxLen]) + "..."
}
