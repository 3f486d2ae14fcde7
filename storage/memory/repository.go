package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/innovatel/docstore/core"
	"github.com/innovatel/docstore/storage"
)

// Repository is the in-memory document repository.
type Repository struct {
	mu     sync.RWMutex
	docs   map[string]*core.Document
	closed bool
	newID  func() string
	logger *slog.Logger
}

var _ storage.DocumentRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// WithIDGenerator sets the generator used for documents saved without
// an id. Default is uuid.NewString. Mainly useful for deterministic
// tests; generated ids must be non-empty and globally unique.
func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) {
		if newID == nil {
			newID = uuid.NewString
		}
		r.newID = newID
	}
}

// NewRepository creates an empty in-memory repository.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		docs:   make(map[string]*core.Document),
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save upserts a document keyed by its trimmed id, generating a fresh
// id when the trimmed id is empty. Implements storage.DocumentRepository.
func (r *Repository) Save(ctx context.Context, doc *core.Document) (*core.Document, error) {
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}

	id := core.NormalizeID(doc.Id)
	if id == "" {
		id = r.newID()
		r.logger.Debug("generated document id", "id", id)
	}

	stored := doc.Clone()
	stored.Id = id
	r.docs[id] = stored

	return stored.Clone(), nil
}

// FindByID retrieves a document by exact id after trimming. An empty
// id short-circuits to storage.ErrNotFound without a lookup.
func (r *Repository) FindByID(ctx context.Context, id string) (*core.Document, error) {
	if id == "" {
		return nil, storage.ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}

	doc, ok := r.docs[core.NormalizeID(id)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return doc.Clone(), nil
}

// All returns a copy of every stored document. Order follows map
// iteration and is deliberately unspecified.
func (r *Repository) All(ctx context.Context) ([]*core.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}

	docs := make([]*core.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc.Clone())
	}
	return docs, nil
}

// Len reports the number of stored documents.
func (r *Repository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, storage.ErrStorageClosed
	}
	return len(r.docs), nil
}

// Close marks the repository closed and drops its contents. Further
// operations return storage.ErrStorageClosed. Close is idempotent.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.docs = nil
	return nil
}
