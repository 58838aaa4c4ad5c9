package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/atriumhq/docsearch/internal/db"
	"github.com/atriumhq/docsearch/internal/domain"
)

var errInvalidDim = errors.New("vector DIM must be positive")

// EnsureChunkIndex creates the chunk vector index if it does not exist.
// dim is the embedding dimensionality and must match the embedder.
func (s *Store) EnsureChunkIndex(ctx context.Context, dim int) error {
	if dim <= 0 {
		return &db.Error{Op: db.OpCreateIndex, Err: errInvalidDim}
	}

	args := []string{
		domain.ChunkIndexName,
		"ON", "HASH",
		"PREFIX", "1", domain.KeyPrefix + "chunk:",
		"SCHEMA",
		"doc_id", "TAG",
		"chunk_index", "NUMERIC",
		"content", "TEXT",
		"vector", "VECTOR", "HNSW", "6",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(dim),
		"DISTANCE_METRIC", "COSINE",
	}
	return s.createIndex(ctx, args)
}

// EnsureDocumentIndex creates the document attribute index if it does not
// exist. It backs the filter-only listing path.
func (s *Store) EnsureDocumentIndex(ctx context.Context) error {
	args := []string{
		domain.DocumentIndexName,
		"ON", "HASH",
		"PREFIX", "1", domain.KeyPrefix + "doc:",
		"SCHEMA",
		"title", "TEXT",
		"category_id", "TAG",
		"subcategory_id", "TAG",
		"tag_ids", "TAG", "SEPARATOR", ",",
		"role", "TAG",
		"status", "TAG",
	}
	return s.createIndex(ctx, args)
}

func (s *Store) createIndex(ctx context.Context, args []string) error {
	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "index already exists") {
			return nil
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}
