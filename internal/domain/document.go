package domain

// Storage key namespace.
const (
	// KeyPrefix namespaces all docsearch keys in the store.
	KeyPrefix = "docsearch:"
	// ChunkIndexName is the FT index over document chunks (vector search).
	ChunkIndexName = KeyPrefix + "chunks:idx"
	// DocumentIndexName is the FT index over document records (attribute listing).
	DocumentIndexName = KeyPrefix + "docs:idx"
	// ActivityStream is the stream key for recorded search events.
	ActivityStream = KeyPrefix + "activity"
)

// Result field defaults.
const (
	// DefaultTitle is used when a document record carries no title.
	DefaultTitle = "Untitled Document"
	// StatusComplete is the default embedding/processing status.
	StatusComplete = "complete"
)

// Document is a resolved portal document record.
type Document struct {
	ID            string
	Title         string
	Preview       string
	CategoryID    string
	Category      string
	SubcategoryID string
	Subcategory   string
	TagIDs        []string
	Tags          []string
	// VisibleRoles lists roles the document is explicitly visible to.
	// Empty means no visibility record exists and Role is the fallback.
	VisibleRoles []string
	Role         string
	Status       string
	CreatedAt    int64 // unix milliseconds, 0 when unknown
	UpdatedAt    int64
}

// Placeholder returns a minimal record for a match whose document
// could not be resolved, so the match still produces a result.
func Placeholder(id string) Document {
	return Document{ID: id, Title: DefaultTitle}
}
