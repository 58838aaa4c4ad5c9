package search

import (
	"testing"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/domain/search/result"
)

func mkItem(doc domain.Document) item {
	return item{doc: doc, res: result.FromListing(doc)}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.doc.ID
	}
	return out
}

func TestApplyFilters_NoActiveFilters(t *testing.T) {
	items := []item{
		mkItem(domain.Document{ID: "a"}),
		mkItem(domain.Document{ID: "b"}),
	}

	got := applyFilters(items, filterset.FilterSet{CategoryID: filterset.All, Role: filterset.All})
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
}

func TestApplyFilters_Category(t *testing.T) {
	items := []item{
		mkItem(domain.Document{ID: "a", CategoryID: "cat-1"}),
		mkItem(domain.Document{ID: "b", CategoryID: "cat-2"}),
	}

	got := applyFilters(items, filterset.FilterSet{CategoryID: "cat-1"})
	if len(got) != 1 || got[0].doc.ID != "a" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFilters_Subcategory(t *testing.T) {
	items := []item{
		mkItem(domain.Document{ID: "a", SubcategoryID: "sub-1"}),
		mkItem(domain.Document{ID: "b", SubcategoryID: "sub-2"}),
	}

	got := applyFilters(items, filterset.FilterSet{SubcategoryID: "sub-2"})
	if len(got) != 1 || got[0].doc.ID != "b" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFilters_TagByID(t *testing.T) {
	// Tag filtering matches stored tag ids, not display names.
	items := []item{
		mkItem(domain.Document{ID: "a", TagIDs: []string{"t1", "t2"}, Tags: []string{"benefits", "pto"}}),
		mkItem(domain.Document{ID: "b", TagIDs: []string{"t3"}, Tags: []string{"t1"}}),
	}

	got := applyFilters(items, filterset.FilterSet{TagID: "t1"})
	if len(got) != 1 || got[0].doc.ID != "a" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFilters_RoleVisibilityList(t *testing.T) {
	items := []item{
		mkItem(domain.Document{ID: "a", VisibleRoles: []string{"manager", "hr"}}),
		mkItem(domain.Document{ID: "b", VisibleRoles: []string{"employee"}}),
	}

	got := applyFilters(items, filterset.FilterSet{Role: "manager"})
	if len(got) != 1 || got[0].doc.ID != "a" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFilters_RoleFallback(t *testing.T) {
	// Without a visibility list the document's own role decides.
	items := []item{
		mkItem(domain.Document{ID: "a", Role: "employee"}),
		mkItem(domain.Document{ID: "b", Role: "manager"}),
		mkItem(domain.Document{ID: "c", VisibleRoles: []string{"hr"}, Role: "employee"}),
	}

	got := applyFilters(items, filterset.FilterSet{Role: "employee"})
	if len(got) != 1 || got[0].doc.ID != "a" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFilters_Conjunction(t *testing.T) {
	items := []item{
		mkItem(domain.Document{ID: "a", CategoryID: "cat-1", TagIDs: []string{"t1"}}),
		mkItem(domain.Document{ID: "b", CategoryID: "cat-1", TagIDs: []string{"t2"}}),
		mkItem(domain.Document{ID: "c", CategoryID: "cat-2", TagIDs: []string{"t1"}}),
	}

	got := applyFilters(items, filterset.FilterSet{CategoryID: "cat-1", TagID: "t1"})
	if len(got) != 1 || got[0].doc.ID != "a" {
		t.Fatalf("got %v", ids(got))
	}
}
