// Copyright 2026 Innovatel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package docstore

import (
	"context"
	"log/slog"

	"github.com/innovatel/docstore/core"
	"github.com/innovatel/docstore/search"
	"github.com/innovatel/docstore/storage"
	"github.com/innovatel/docstore/storage/memory"
)

// Store is the document repository facade. It owns an in-memory
// repository and a searcher over it, and exposes the three store
// operations: Save (upsert), Search (filtered scan) and FindByID
// (point lookup). State lives for process lifetime only.
type Store struct {
	repository *memory.Repository
	searcher   *search.Searcher
	logger     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger   *slog.Logger
	repoOpts []memory.Option
}

// WithLogger sets the logger used by the store and its components.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// WithRepositoryOptions forwards options to the underlying in-memory
// repository.
func WithRepositoryOptions(opts ...memory.Option) StoreOption {
	return func(o *storeOptions) {
		o.repoOpts = append(o.repoOpts, opts...)
	}
}

// NewStore creates an empty document store.
func NewStore(opts ...StoreOption) (*Store, error) {
	// Apply options
	options := &storeOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	// Create repository
	repoOpts := append([]memory.Option{memory.WithLogger(options.logger)}, options.repoOpts...)
	repository := memory.NewRepository(repoOpts...)

	// Create searcher
	searcher, err := search.NewSearcher(repository, search.WithLogger(options.logger))
	if err != nil {
		repository.Close()
		return nil, err
	}

	return &Store{
		repository: repository,
		searcher:   searcher,
		logger:     options.logger,
	}, nil
}

// Save upserts a document. A nil document is the one invalid argument
// (core.ErrNilDocument); a document without an id gets a generated one,
// observable on the returned copy.
func (s *Store) Save(ctx context.Context, doc *core.Document) (*core.Document, error) {
	return s.repository.Save(ctx, doc)
}

// Search returns every stored document matching the request, in
// unspecified order. A nil or empty request matches everything.
func (s *Store) Search(ctx context.Context, request *core.SearchRequest) ([]*core.Document, error) {
	return s.searcher.Search(ctx, request)
}

// FindByID retrieves a document by id. Absent and unknown ids report
// storage.ErrNotFound, never a failure.
func (s *Store) FindByID(ctx context.Context, id string) (*core.Document, error) {
	return s.repository.FindByID(ctx, id)
}

// Len reports the number of stored documents.
func (s *Store) Len(ctx context.Context) (int, error) {
	return s.repository.Len(ctx)
}

// Close releases the store. Further operations fail with
// storage.ErrStorageClosed.
func (s *Store) Close() error {
	if err := s.repository.Close(); err != nil {
		s.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}

// DocumentRepository exposes the underlying repository.
func (s *Store) DocumentRepository() storage.DocumentRepository {
	return s.repository
}

// NewSearcher creates an additional searcher over the store's
// repository, e.g. with a dedicated logger.
func (s *Store) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.repository, opts...)
}
