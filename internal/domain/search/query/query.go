// Package query validates raw search input before it reaches any backend.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atriumhq/docsearch/internal/domain"
)

var (
	// ErrNotString signals a query value of the wrong type.
	ErrNotString = errors.New("query must be a string")
	// ErrEmpty signals a query that is empty after trimming.
	ErrEmpty = errors.New("query must not be empty")
)

// Validate checks a raw query value and returns the trimmed query text.
// The value must be a string that is non-empty after trimming whitespace.
// No other normalization (case folding, length caps) happens here.
func Validate(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidQuery, ErrNotString)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidQuery, ErrEmpty)
	}
	return trimmed, nil
}
