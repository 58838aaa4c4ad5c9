package docsearch

import "fmt"

// APIError is a non-2xx response from the docsearch API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("docsearch: api error %d: %s", e.Status, e.Message)
}

// IsValidation reports whether the error was a request validation failure.
func (e *APIError) IsValidation() bool {
	return e.Status >= 400 && e.Status < 500
}
