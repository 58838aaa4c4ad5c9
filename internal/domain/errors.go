package domain

import "errors"

var (
	// ErrInvalidQuery signals a query rejected before any backend call.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEmbeddingFailure signals a failure to vectorize the query text.
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrVectorSearchFailure signals a failure of the similarity search backend.
	ErrVectorSearchFailure = errors.New("vector search failure")
	// ErrDocumentResolutionFailure signals a failure to resolve matched document records.
	ErrDocumentResolutionFailure = errors.New("document resolution failure")
	// ErrListingFailure signals a failure of the attribute-only listing backend.
	ErrListingFailure = errors.New("listing failure")
	// ErrTimeout signals a backend call that exceeded the request deadline.
	ErrTimeout = errors.New("request timed out")
)
