// Package listing retrieves documents by attribute filters from the
// document FT index, without any vector scoring.
package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/atriumhq/docsearch/internal/db"
	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
	"github.com/atriumhq/docsearch/internal/repository/document"
)

// store is the consumer interface for attribute listing (ISP).
type store interface {
	SearchTags(ctx context.Context, q *db.TagQuery) (*db.SearchResult, error)
}

// Repo implements usecase/listing.Repository.
type Repo struct {
	store store
}

// New creates a listing repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns documents matching the active filters. Role visibility is
// applied by the caller; only category, subcategory and tag filters are
// pushed down to the index.
func (r *Repo) List(ctx context.Context, filters filterset.FilterSet, limit int) ([]domain.Document, error) {
	q := &db.TagQuery{
		IndexName: domain.DocumentIndexName,
		Tags:      map[string]string{},
		Limit:     limit,
		ReturnFields: []string{
			"title", "preview",
			"category_id", "category", "subcategory_id", "subcategory",
			"tag_ids", "tags", "visible_roles", "role",
			"status", "created_at", "updated_at",
		},
	}

	f := filters.Normalize()
	if f.CategoryID != "" {
		q.Tags["category_id"] = f.CategoryID
	}
	if f.SubcategoryID != "" {
		q.Tags["subcategory_id"] = f.SubcategoryID
	}
	if f.TagID != "" {
		q.Tags["tag_ids"] = f.TagID
	}

	sr, err := r.store.SearchTags(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	docs := make([]domain.Document, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, domain.KeyPrefix+"doc:")
		docs = append(docs, document.ParseFields(id, entry.Fields))
	}

	return docs, nil
}
