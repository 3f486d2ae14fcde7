package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatel/docstore/core"
	"github.com/innovatel/docstore/storage"
	"github.com/innovatel/docstore/storage/memory"
)

func newTestRepository(t *testing.T, docs ...*core.Document) storage.DocumentRepository {
	t.Helper()
	repo := memory.NewRepository()
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	for _, doc := range docs {
		_, err := repo.Save(ctx, doc)
		require.NoError(t, err)
	}
	return repo
}

func resultIds(docs []*core.Document) []string {
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.Id)
	}
	return ids
}

func TestNewSearcher(t *testing.T) {
	repo := newTestRepository(t)

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(repo)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(repo, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(repo, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrRepositoryRequired, err)
	})
}

func TestSearch_EmptyStore(t *testing.T) {
	searcher, err := NewSearcher(newTestRepository(t))
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchRequest{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_AllAbsentRequestMatchesEverything(t *testing.T) {
	repo := newTestRepository(t,
		&core.Document{Id: "a", Title: core.String("Apple")},
		&core.Document{Id: "b"},
		&core.Document{Id: "c", Content: core.String("body")},
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	t.Run("empty request", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), &core.SearchRequest{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, resultIds(results))
	})

	t.Run("nil request", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, resultIds(results))
	})
}

func TestSearch_TitlePrefixes(t *testing.T) {
	repo := newTestRepository(t,
		&core.Document{Id: "a", Title: core.String("Apple")},
		&core.Document{Id: "b", Title: core.String("Apricot")},
		&core.Document{Id: "c", Title: core.String("Banana")},
		&core.Document{Id: "d"}, // no title
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchRequest{
		TitlePrefixes: []string{"Ap"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, resultIds(results))

	results, err = searcher.Search(context.Background(), &core.SearchRequest{
		TitlePrefixes: []string{"Ap", "Ba"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, resultIds(results))
}

func TestSearch_ContainsContents(t *testing.T) {
	repo := newTestRepository(t,
		&core.Document{Id: "a", Content: core.String("the quick brown fox")},
		&core.Document{Id: "b", Content: core.String("a lazy dog")},
		&core.Document{Id: "c"}, // no content
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchRequest{
		ContainsContents: []string{"quick", "lazy"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, resultIds(results))

	results, err = searcher.Search(context.Background(), &core.SearchRequest{
		ContainsContents: []string{"cat"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_AuthorIds(t *testing.T) {
	repo := newTestRepository(t,
		&core.Document{Id: "a", Author: &core.Author{Id: "ada", Name: "Ada"}},
		&core.Document{Id: "b", Author: &core.Author{Id: "bob", Name: "Bob"}},
		&core.Document{Id: "c"}, // no author
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchRequest{
		AuthorIds: []string{"ada", "carol"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a"}, resultIds(results))
}

func TestSearch_CreatedRange(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	repo := newTestRepository(t,
		&core.Document{Id: "a", Created: core.Time(jan)},
		&core.Document{Id: "b", Created: core.Time(jun)},
		&core.Document{Id: "c", Created: core.Time(dec)},
		&core.Document{Id: "d"}, // no created
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	t.Run("both bounds inclusive", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), &core.SearchRequest{
			CreatedFrom: core.Time(jan),
			CreatedTo:   core.Time(jun),
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, resultIds(results))
	})

	t.Run("lower bound only", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), &core.SearchRequest{
			CreatedFrom: core.Time(jun),
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"b", "c"}, resultIds(results))
	})

	t.Run("nil created excluded when a bound is set", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), &core.SearchRequest{
			CreatedTo: core.Time(dec),
		})
		require.NoError(t, err)
		assert.NotContains(t, resultIds(results), "d")
	})

	t.Run("inverted range matches nothing", func(t *testing.T) {
		results, err := searcher.Search(context.Background(), &core.SearchRequest{
			CreatedFrom: core.Time(dec),
			CreatedTo:   core.Time(jan),
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearch_Conjunction(t *testing.T) {
	jun := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	repo := newTestRepository(t,
		&core.Document{
			Id:      "match",
			Title:   core.String("Release notes"),
			Content: core.String("minor fixes"),
			Author:  &core.Author{Id: "ada"},
			Created: core.Time(jun),
		},
		&core.Document{
			Id:      "wrong-author",
			Title:   core.String("Release notes"),
			Content: core.String("minor fixes"),
			Author:  &core.Author{Id: "bob"},
			Created: core.Time(jun),
		},
		&core.Document{
			Id:      "wrong-title",
			Title:   core.String("Changelog"),
			Content: core.String("minor fixes"),
			Author:  &core.Author{Id: "ada"},
			Created: core.Time(jun),
		},
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchRequest{
		TitlePrefixes:    []string{"Release"},
		ContainsContents: []string{"fixes"},
		AuthorIds:        []string{"ada"},
		CreatedFrom:      core.Time(jun.Add(-time.Hour)),
		CreatedTo:        core.Time(jun.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"match"}, resultIds(results))
}

// recordingMonitor captures the sequence of monitor callbacks.
type recordingMonitor struct {
	started   bool
	scanned   int
	matched   []string
	finished  []string
	callOrder []string
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(_ *core.SearchRequest) {
	m.started = true
	m.callOrder = append(m.callOrder, "start")
}

func (m *recordingMonitor) AfterScan(total int) {
	m.scanned = total
	m.callOrder = append(m.callOrder, "scan")
}

func (m *recordingMonitor) Matched(doc *core.Document) {
	m.matched = append(m.matched, doc.Id)
	m.callOrder = append(m.callOrder, "matched")
}

func (m *recordingMonitor) Finish(results []*core.Document) {
	m.finished = resultIds(results)
	m.callOrder = append(m.callOrder, "finish")
}

func TestSearchWithMonitor(t *testing.T) {
	repo := newTestRepository(t,
		&core.Document{Id: "a", Title: core.String("Apple")},
		&core.Document{Id: "b", Title: core.String("Banana")},
	)
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results, err := searcher.SearchWithMonitor(context.Background(), &core.SearchRequest{
		TitlePrefixes: []string{"Ap"},
	}, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, 2, monitor.scanned)
	assert.Equal(t, []string{"a"}, monitor.matched)
	assert.ElementsMatch(t, resultIds(results), monitor.finished)
	assert.Equal(t, []string{"start", "scan", "matched", "finish"}, monitor.callOrder)
}

func TestSearch_ClosedRepository(t *testing.T) {
	repo := memory.NewRepository()
	searcher, err := NewSearcher(repo)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = searcher.Search(context.Background(), nil)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
