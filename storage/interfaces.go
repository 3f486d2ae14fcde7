package storage

import (
	"context"

	"github.com/innovatel/docstore/core"
)

// DocumentRepository provides storage operations for documents.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// Save upserts a document keyed by its id.
	// The id is trimmed of surrounding whitespace; if it is empty after
	// trimming, a new globally-unique id is generated and assigned.
	// Any previous document at the key is overwritten, no field merge
	// occurs, and the Created field is stored exactly as supplied.
	// Returns the stored document with its final id populated, or
	// core.ErrNilDocument if doc is nil (the store is unchanged).
	Save(ctx context.Context, doc *core.Document) (*core.Document, error)

	// FindByID retrieves a document by id.
	// An empty id returns ErrNotFound without a lookup; otherwise the
	// id is trimmed and matched exactly. Returns ErrNotFound if no
	// document has the id.
	FindByID(ctx context.Context, id string) (*core.Document, error)

	// All returns every stored document, in no particular order.
	All(ctx context.Context) ([]*core.Document, error)

	// Len reports the number of stored documents.
	Len(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
