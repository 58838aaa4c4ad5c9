package document

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/atriumhq/docsearch/internal/domain"
)

func TestGetMulti_ResolvesAndPreservesOrder(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hGetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		want := []string{"docsearch:doc:a", "docsearch:doc:b"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("keys = %v, want %v", keys, want)
		}
		return []map[string]string{
			{
				"title":          "Onboarding Guide",
				"preview":        "How to get started",
				"category_id":    "cat-1",
				"category":       "HR",
				"subcategory_id": "sub-2",
				"subcategory":    "Onboarding",
				"tag_ids":        "t1,t2",
				"tags":           "new hire,benefits",
				"visible_roles":  "employee,manager",
				"role":           "employee",
				"status":         "complete",
				"created_at":     "1700000000000",
				"updated_at":     "1700000001000",
			},
			{
				"title": "Expense Policy",
			},
		}, nil
	}

	docs, err := repo.GetMulti(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}

	got := docs[0]
	if got.ID != "a" || got.Title != "Onboarding Guide" || got.CategoryID != "cat-1" {
		t.Errorf("doc = %+v", got)
	}
	if !reflect.DeepEqual(got.TagIDs, []string{"t1", "t2"}) {
		t.Errorf("TagIDs = %v", got.TagIDs)
	}
	if !reflect.DeepEqual(got.VisibleRoles, []string{"employee", "manager"}) {
		t.Errorf("VisibleRoles = %v", got.VisibleRoles)
	}
	if got.CreatedAt != 1700000000000 {
		t.Errorf("CreatedAt = %d", got.CreatedAt)
	}
	if docs[1].ID != "b" || docs[1].Title != "Expense Policy" {
		t.Errorf("second doc = %+v", docs[1])
	}
}

func TestGetMulti_MissingRecordYieldsPlaceholder(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hGetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		return []map[string]string{{}}, nil
	}

	docs, err := repo.GetMulti(context.Background(), []string{"ghost"})
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if docs[0].ID != "ghost" || docs[0].Title != domain.DefaultTitle {
		t.Errorf("placeholder = %+v", docs[0])
	}
}

func TestGetMulti_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	docs, err := repo.GetMulti(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if docs != nil {
		t.Errorf("got %v, want nil", docs)
	}
}

func TestGetMulti_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	wantErr := errors.New("conn reset")
	ms.hGetAllMultiFn = func(_ context.Context, _ []string) ([]map[string]string, error) {
		return nil, wantErr
	}

	_, err := repo.GetMulti(context.Background(), []string{"a"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestParseFields_MalformedValues(t *testing.T) {
	doc := ParseFields("x", map[string]string{
		"title":      "T",
		"tag_ids":    " , t1 , ",
		"created_at": "not-a-number",
	})
	if !reflect.DeepEqual(doc.TagIDs, []string{"t1"}) {
		t.Errorf("TagIDs = %v", doc.TagIDs)
	}
	if doc.CreatedAt != 0 {
		t.Errorf("CreatedAt = %d, want 0", doc.CreatedAt)
	}
}
