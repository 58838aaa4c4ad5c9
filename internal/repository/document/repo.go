// Package document resolves document records from hash storage.
package document

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atriumhq/docsearch/internal/domain"
)

// store is the consumer interface for document resolution (ISP).
type store interface {
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Repo implements usecase/search.DocumentRepository.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Key returns the hash key for a document id.
func Key(id string) string {
	return domain.KeyPrefix + "doc:" + id
}

// GetMulti resolves the given ids in one round-trip, preserving order.
// An id with no stored record yields a placeholder so the caller can
// still surface the match.
func (r *Repo) GetMulti(ctx context.Context, ids []string) ([]domain.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get documents: %w", err)
	}

	docs := make([]domain.Document, len(ids))
	for i, fields := range hashes {
		if len(fields) == 0 {
			docs[i] = domain.Placeholder(ids[i])
			continue
		}
		docs[i] = ParseFields(ids[i], fields)
	}

	return docs, nil
}

// ParseFields builds a Document from flat hash fields. Shared with the
// listing repository, which reads the same hash layout via the FT index.
func ParseFields(id string, fields map[string]string) domain.Document {
	doc := domain.Document{
		ID:            id,
		Title:         fields["title"],
		Preview:       fields["preview"],
		CategoryID:    fields["category_id"],
		Category:      fields["category"],
		SubcategoryID: fields["subcategory_id"],
		Subcategory:   fields["subcategory"],
		TagIDs:        splitCSV(fields["tag_ids"]),
		Tags:          splitCSV(fields["tags"]),
		VisibleRoles:  splitCSV(fields["visible_roles"]),
		Role:          fields["role"],
		Status:        fields["status"],
		CreatedAt:     parseMillis(fields["created_at"]),
		UpdatedAt:     parseMillis(fields["updated_at"]),
	}
	return doc
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseMillis(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
