package search

import (
	"slices"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
)

// applyFilters drops items that do not satisfy every active filter.
// Filters are conjunctive and applied after vector retrieval, so a filtered
// search can return fewer results than the retrieval count.
func applyFilters(items []item, filters filterset.FilterSet) []item {
	f := filters.Normalize()
	if (f == filterset.FilterSet{}) {
		return items
	}

	kept := items[:0]
	for _, it := range items {
		if matchesFilters(it.doc, f) {
			kept = append(kept, it)
		}
	}
	return kept
}

func matchesFilters(doc domain.Document, f filterset.FilterSet) bool {
	if f.CategoryID != "" && doc.CategoryID != f.CategoryID {
		return false
	}
	if f.SubcategoryID != "" && doc.SubcategoryID != f.SubcategoryID {
		return false
	}
	if f.Role != "" && !visibleToRole(doc, f.Role) {
		return false
	}
	if f.TagID != "" && !slices.Contains(doc.TagIDs, f.TagID) {
		return false
	}
	return true
}

// visibleToRole checks the document's explicit visibility list first and
// falls back to its single owning role when no list exists.
func visibleToRole(doc domain.Document, role string) bool {
	if len(doc.VisibleRoles) > 0 {
		return slices.Contains(doc.VisibleRoles, role)
	}
	return doc.Role == role
}
