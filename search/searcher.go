package search

import (
	"context"
	"log/slog"

	"github.com/innovatel/docstore/core"
	"github.com/innovatel/docstore/storage"
)

// Searcher provides multi-criteria filtered search over a document repository.
type Searcher struct {
	repository storage.DocumentRepository
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given repository.
func NewSearcher(repository storage.DocumentRepository, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		repository: repository,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns every stored document matching the request.
// A nil or empty request matches every document; result order is
// unspecified. The only error condition is a repository failure.
func (s *Searcher) Search(ctx context.Context, request *core.SearchRequest) ([]*core.Document, error) {
	return s.SearchWithMonitor(ctx, request, nil)
}

// SearchWithMonitor returns every stored document matching the request,
// reporting each stage of the scan to the monitor.
func (s *Searcher) SearchWithMonitor(ctx context.Context, request *core.SearchRequest, monitor SearchMonitor) ([]*core.Document, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if request == nil {
		request = &core.SearchRequest{}
	}

	monitor.Start(request)

	// An inverted created range is legal, it just matches nothing.
	if err := core.ValidateSearchRequest(request); err != nil {
		s.logger.Debug("search request cannot match any document", "err", err)
	}

	// 1. Full scan of the repository
	docs, err := s.repository.All(ctx)
	if err != nil {
		s.logger.Error("error scanning documents", "err", err)
		return nil, err
	}
	monitor.AfterScan(len(docs))

	// 2. Conjunction of the four predicate categories
	results := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if !titleMatches(doc, request.TitlePrefixes) {
			continue
		}
		if !contentMatches(doc, request.ContainsContents) {
			continue
		}
		if !authorMatches(doc, request.AuthorIds) {
			continue
		}
		if !createdInRange(doc, request.CreatedFrom, request.CreatedTo) {
			continue
		}
		monitor.Matched(doc)
		results = append(results, doc)
	}

	monitor.Finish(results)
	return results, nil
}
