package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atriumhq/docsearch/internal/domain/search/sortmode"
)

// sortItems orders items in place. Ties keep retrieval order (best match
// first), hence the stable sorts.
func sortItems(items []item, mode sortmode.Mode) {
	switch mode {
	case sortmode.CreatedAt:
		// Unknown timestamps (0) sort last.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].doc.CreatedAt > items[j].doc.CreatedAt
		})
	case sortmode.Title:
		// Collators are stateful, so build one per sort.
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].res.Title, items[j].res.Title) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].res.Similarity > items[j].res.Similarity
		})
	}
}
