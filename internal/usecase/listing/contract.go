package listing

import (
	"context"

	"github.com/atriumhq/docsearch/internal/domain"
	"github.com/atriumhq/docsearch/internal/domain/search/filterset"
)

// Repository lists documents by attribute filters.
type Repository interface {
	List(ctx context.Context, filters filterset.FilterSet, limit int) ([]domain.Document, error)
}
