package search

import (
	"fmt"
	"testing"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/result"
	"github.com/atriumhq/docsearch/internal/domain/search/sortmode"
)

func mkScored(id string, sim float64, createdAt int64, title string) item {
	return item{
		doc: domain.Document{ID: id, Title: title, CreatedAt: createdAt},
		res: result.Result{ID: id, Title: title, Similarity: sim, CreatedAt: createdAt},
	}
}

func TestSortItems_Similarity(t *testing.T) {
	items := []item{
		mkScored("a", 0.5, 0, "A"),
		mkScored("b", 0.9, 0, "B"),
		mkScored("c", 0.7, 0, "C"),
	}

	sortItems(items, sortmode.Similarity)
	if got := fmt.Sprint(ids(items)); got != "[b c a]" {
		t.Errorf("order = %s", got)
	}
}

func TestSortItems_CreatedAtDescending(t *testing.T) {
	items := []item{
		mkScored("old", 0.9, 1000, "Old"),
		mkScored("new", 0.5, 3000, "New"),
		mkScored("unknown", 0.7, 0, "Unknown"),
	}

	sortItems(items, sortmode.CreatedAt)
	if got := fmt.Sprint(ids(items)); got != "[new old unknown]" {
		t.Errorf("order = %s", got)
	}
}

func TestSortItems_TitleAscending(t *testing.T) {
	items := []item{
		mkScored("c", 0.9, 0, "cherry"),
		mkScored("a", 0.5, 0, "Apple"),
		mkScored("b", 0.7, 0, "banana"),
	}

	sortItems(items, sortmode.Title)
	if got := fmt.Sprint(ids(items)); got != "[a b c]" {
		t.Errorf("order = %s", got)
	}
}

func TestSortItems_StableOnTies(t *testing.T) {
	items := []item{
		mkScored("first", 0.8, 0, "X"),
		mkScored("second", 0.8, 0, "X"),
	}

	sortItems(items, sortmode.Similarity)
	if got := fmt.Sprint(ids(items)); got != "[first second]" {
		t.Errorf("order = %s", got)
	}
}
