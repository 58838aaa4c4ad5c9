// Package filterset holds the attribute filters applied to a search or listing.
package filterset

// All is the sentinel value meaning a filter is not applied.
const All = "all"

// FilterSet maps filter names to selected values. An empty value or the
// "all" sentinel means the filter is not applied. Equality is structural.
type FilterSet struct {
	CategoryID    string `json:"categoryId,omitempty"`
	SubcategoryID string `json:"subcategoryId,omitempty"`
	TagID         string `json:"tagId,omitempty"`
	Role          string `json:"roleType,omitempty"`
}

// Normalize maps "all" sentinels to empty values so the two spellings of
// "not applied" compare equal.
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
