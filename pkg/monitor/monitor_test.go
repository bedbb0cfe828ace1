package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/events"
	"github.com/umputun/newswatch/pkg/monitor/mocks"
	"github.com/umputun/newswatch/pkg/repository"
)

// eventRecorder collects published events for assertions
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) record(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) byType(t events.Type) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []events.Event
	for _, e := range r.events {
		if e.Type == t {
			res = append(res, e)
		}
	}
	return res
}

func testSource() *domain.Source {
	return &domain.Source{
		ID:       1,
		URL:      "https://news.example.com/politics",
		Category: "politics",
		Active:   true,
	}
}

func TestManager_Collect(t *testing.T) {
	src := testSource()

	sources := &mocks.SourceStoreMock{
		GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error {
			assert.Equal(t, int64(1), id)
			assert.WithinDuration(t, time.Now(), ts, time.Minute)
			return nil
		},
	}

	stored := map[string]*domain.Article{"https://news.example.com/politics/old": {}}
	var mu sync.Mutex
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			_, ok := stored[url]
			return ok, nil
		},
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			stored[article.URL] = article
			return nil
		},
	}

	published := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	scraper := &mocks.ScraperMock{
		WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string {
			assert.Equal(t, src.URL, startURL)
			assert.Equal(t, 3, maxPages)
			return []string{startURL, startURL + "?page=2"}
		},
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
			if pageURL == src.URL {
				return []domain.Stub{
					{Title: "Fresh story", URL: "https://news.example.com/politics/fresh", Published: &published},
				}, nil
			}
			return []domain.Stub{
				{Title: "Old story", URL: "https://news.example.com/politics/old"},
			}, nil
		},
		ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) {
			return "full article body", nil
		},
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: bus, MaxPages: 3})

	err := m.Collect(context.Background(), 1)
	require.NoError(t, err)

	// the already-known stub is skipped, only the fresh one is stored
	mu.Lock()
	art, ok := stored["https://news.example.com/politics/fresh"]
	mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, "Fresh story", art.Title)
	assert.Equal(t, "politics", art.Category, "category copied from source")
	assert.Equal(t, src.URL, art.SourceURL)
	assert.Equal(t, "full article body", art.Content)
	assert.Equal(t, published, art.Published)

	require.Len(t, articles.CreateArticleCalls(), 1)
	require.Len(t, sources.UpdateSourceCollectedCalls(), 1)

	newArticles := rec.byType(events.TypeNewArticle)
	require.Len(t, newArticles, 1)
	assert.Equal(t, "Fresh story", newArticles[0].Article.Title)

	completed := rec.byType(events.TypeCollectionCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, 1, completed[0].NewCount)
	assert.Equal(t, 2, completed[0].TotalProcessed)
}

func TestManager_CollectIdempotent(t *testing.T) {
	src := testSource()

	sources := &mocks.SourceStoreMock{
		GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}

	stored := map[string]bool{}
	var mu sync.Mutex
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			return stored[url], nil
		},
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			stored[article.URL] = true
			return nil
		},
	}

	scraper := &mocks.ScraperMock{
		WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
			return []domain.Stub{{Title: "Story", URL: "https://news.example.com/politics/story"}}, nil
		},
		ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) { return "body", nil },
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: bus})

	require.NoError(t, m.Collect(context.Background(), 1))
	require.NoError(t, m.Collect(context.Background(), 1))

	assert.Len(t, articles.CreateArticleCalls(), 1, "second run inserts nothing")
	completed := rec.byType(events.TypeCollectionCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, 1, completed[0].NewCount)
	assert.Equal(t, 0, completed[1].NewCount)
	assert.Equal(t, 1, completed[1].TotalProcessed)
}

func TestManager_CollectSkipsInactiveOrPaused(t *testing.T) {
	tests := []struct {
		name string
		src  domain.Source
	}{
		{"inactive", domain.Source{ID: 1, URL: "https://news.example.com", Active: false}},
		{"paused", domain.Source{ID: 1, URL: "https://news.example.com", Active: true, Paused: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := &mocks.SourceStoreMock{
				GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) { return &tt.src, nil },
			}
			scraper := &mocks.ScraperMock{}

			m := New(Params{Sources: sources, Articles: &mocks.ArticleStoreMock{}, Scraper: scraper, Bus: events.NewBus()})
			require.NoError(t, m.Collect(context.Background(), 1))
			assert.Empty(t, scraper.WalkPagesCalls(), "no scraping for a skipped source")
		})
	}
}

func TestManager_CollectPageFailureContinues(t *testing.T) {
	src := testSource()
	sources := &mocks.SourceStoreMock{
		GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}

	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}

	scraper := &mocks.ScraperMock{
		WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string {
			return []string{startURL, startURL + "?page=2"}
		},
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
			if pageURL == src.URL {
				return nil, assert.AnError
			}
			return []domain.Stub{{Title: "Survivor", URL: "https://news.example.com/politics/survivor"}}, nil
		},
		ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) { return "body", nil },
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: bus})
	require.NoError(t, m.Collect(context.Background(), 1), "one failing page does not fail the run")

	completed := rec.byType(events.TypeCollectionCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, 1, completed[0].NewCount)
	assert.Equal(t, 1, completed[0].TotalProcessed)
}

func TestManager_CollectContentFailureSkipsArticle(t *testing.T) {
	src := testSource()
	sources := &mocks.SourceStoreMock{
		GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	scraper := &mocks.ScraperMock{
		WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
			return []domain.Stub{
				{Title: "Broken", URL: "https://news.example.com/politics/broken"},
				{Title: "Good", URL: "https://news.example.com/politics/good"},
			}, nil
		},
		ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) {
			if articleURL == "https://news.example.com/politics/broken" {
				return "", assert.AnError
			}
			return "body", nil
		},
	}

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: events.NewBus()})
	require.NoError(t, m.Collect(context.Background(), 1))

	require.Len(t, articles.CreateArticleCalls(), 1)
	assert.Equal(t, "Good", articles.CreateArticleCalls()[0].Article.Title)
}

func TestManager_CollectSummarizer(t *testing.T) {
	src := testSource()
	makeMocks := func(stub domain.Stub, summarizeErr error) (*mocks.ArticleStoreMock, *mocks.SummarizerMock, *Manager) {
		sources := &mocks.SourceStoreMock{
			GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
			UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
		}
		articles := &mocks.ArticleStoreMock{
			ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
			CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
		}
		scraper := &mocks.ScraperMock{
			WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
			ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
				return []domain.Stub{stub}, nil
			},
			ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) { return "body", nil },
		}
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, title, content string) (string, error) {
				if summarizeErr != nil {
					return "", summarizeErr
				}
				return "generated summary", nil
			},
		}
		m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Summarizer: summarizer, Bus: events.NewBus()})
		return articles, summarizer, m
	}

	t.Run("generates summary when listing had none", func(t *testing.T) {
		articles, summarizer, m := makeMocks(domain.Stub{Title: "T", URL: "https://news.example.com/a"}, nil)
		require.NoError(t, m.Collect(context.Background(), 1))
		require.Len(t, summarizer.SummarizeCalls(), 1)
		require.Len(t, articles.CreateArticleCalls(), 1)
		assert.Equal(t, "generated summary", articles.CreateArticleCalls()[0].Article.Summary)
	})

	t.Run("keeps listing summary", func(t *testing.T) {
		articles, summarizer, m := makeMocks(domain.Stub{Title: "T", URL: "https://news.example.com/a", Summary: "from listing"}, nil)
		require.NoError(t, m.Collect(context.Background(), 1))
		assert.Empty(t, summarizer.SummarizeCalls())
		assert.Equal(t, "from listing", articles.CreateArticleCalls()[0].Article.Summary)
	})

	t.Run("failure leaves summary empty", func(t *testing.T) {
		articles, _, m := makeMocks(domain.Stub{Title: "T", URL: "https://news.example.com/a"}, assert.AnError)
		require.NoError(t, m.Collect(context.Background(), 1))
		require.Len(t, articles.CreateArticleCalls(), 1)
		assert.Empty(t, articles.CreateArticleCalls()[0].Article.Summary, "article stored without summary")
	})
}

func TestManager_CollectLostInsertRace(t *testing.T) {
	src := testSource()
	sources := &mocks.SourceStoreMock{
		GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return repository.ErrAlreadyExists },
	}
	scraper := &mocks.ScraperMock{
		WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) {
			return []domain.Stub{{Title: "Raced", URL: "https://news.example.com/raced"}}, nil
		},
		ExtractContentFunc: func(ctx context.Context, articleURL string) (string, error) { return "body", nil },
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: bus})
	require.NoError(t, m.Collect(context.Background(), 1))

	assert.Empty(t, rec.byType(events.TypeNewArticle), "lost race is not a new article")
	completed := rec.byType(events.TypeCollectionCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, 0, completed[0].NewCount)
}

func TestManager_StartStop(t *testing.T) {
	src := testSource()
	sources := &mocks.SourceStoreMock{
		GetSourceFunc:             func(ctx context.Context, id int64) (*domain.Source, error) { return src, nil },
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	scraper := &mocks.ScraperMock{
		WalkPagesFunc:    func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) { return nil, nil },
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: bus, Interval: time.Hour})

	require.NoError(t, m.Start(context.Background(), 1, 0))
	assert.True(t, m.Active(1))
	require.Len(t, rec.byType(events.TypeMonitoringStarted), 1)
	require.Len(t, rec.byType(events.TypeCollectionCompleted), 1, "first run is immediate")

	// second start is a no-op, no duplicate timer and no duplicate run
	require.NoError(t, m.Start(context.Background(), 1, 0))
	assert.Len(t, rec.byType(events.TypeMonitoringStarted), 1)
	assert.Len(t, rec.byType(events.TypeCollectionCompleted), 1)

	m.Stop(1)
	assert.False(t, m.Active(1))
	assert.Len(t, rec.byType(events.TypeMonitoringStopped), 1)

	// stop is idempotent and still announces
	m.Stop(1)
	assert.Len(t, rec.byType(events.TypeMonitoringStopped), 2)
}

func TestManager_StartUnknownSource(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) { return nil, repository.ErrNotFound },
	}

	m := New(Params{Sources: sources, Articles: &mocks.ArticleStoreMock{}, Scraper: &mocks.ScraperMock{}, Bus: events.NewBus()})

	err := m.Start(context.Background(), 42, 0)
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, m.Active(42), "failed start leaves no timer behind")
}

func TestManager_StartFirstRunFailure(t *testing.T) {
	src := testSource()
	calls := 0
	sources := &mocks.SourceStoreMock{
		GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) {
			calls++
			if calls == 2 { // the re-check inside the first Collect
				return nil, assert.AnError
			}
			return src, nil
		},
	}

	bus := events.NewBus()
	rec := &eventRecorder{}
	defer bus.Subscribe(rec.record)()

	m := New(Params{Sources: sources, Articles: &mocks.ArticleStoreMock{}, Scraper: &mocks.ScraperMock{}, Bus: bus, Interval: time.Hour})

	require.NoError(t, m.Start(context.Background(), 1, 0), "failed first run does not fail start")
	assert.True(t, m.Active(1), "timer stays armed after a failed first run")
	require.Len(t, rec.byType(events.TypeError), 1)
	require.Len(t, rec.byType(events.TypeMonitoringStarted), 1)
	m.Stop(1)
}

func TestManager_PauseResume(t *testing.T) {
	src := testSource()
	var paused bool
	sources := &mocks.SourceStoreMock{
		GetSourceFunc: func(ctx context.Context, id int64) (*domain.Source, error) {
			s := *src
			s.Paused = paused
			return &s, nil
		},
		SetSourcePausedFunc: func(ctx context.Context, id int64, p bool) error {
			paused = p
			return nil
		},
		UpdateSourceCollectedFunc: func(ctx context.Context, id int64, ts time.Time) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url string) (bool, error) { return false, nil },
		CreateArticleFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	scraper := &mocks.ScraperMock{
		WalkPagesFunc:    func(ctx context.Context, startURL string, maxPages int) []string { return []string{startURL} },
		ExtractStubsFunc: func(ctx context.Context, pageURL string) ([]domain.Stub, error) { return nil, nil },
	}

	m := New(Params{Sources: sources, Articles: articles, Scraper: scraper, Bus: events.NewBus(), Interval: time.Hour})

	require.NoError(t, m.Start(context.Background(), 1, 0))
	require.True(t, m.Active(1))

	require.NoError(t, m.Pause(context.Background(), 1))
	assert.True(t, paused)
	assert.False(t, m.Active(1))

	require.NoError(t, m.Resume(context.Background(), 1))
	assert.False(t, paused)
	assert.True(t, m.Active(1))
	m.StopAll()
	assert.False(t, m.Active(1))
}

func TestManager_Status(t *testing.T) {
	now := time.Now()
	sources := &mocks.SourceStoreMock{
		GetSourcesFunc: func(ctx context.Context) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 1, URL: "https://a.example.com", Active: true, LastCollected: &now},
				{ID: 2, URL: ""}, // malformed record, skipped
				{ID: 3, URL: "https://c.example.com", Active: true, Paused: true},
			}, nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		CountBySourceFunc: func(ctx context.Context, sourceURL string) (int, error) {
			if sourceURL == "https://a.example.com" {
				return 7, nil
			}
			return 0, nil
		},
	}

	m := New(Params{Sources: sources, Articles: articles, Scraper: &mocks.ScraperMock{}, Bus: events.NewBus()})

	statuses, err := m.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, int64(1), statuses[0].ID)
	assert.Equal(t, 7, statuses[0].ArticleCount)
	assert.True(t, statuses[0].Active)
	require.NotNil(t, statuses[0].LastCollected)

	assert.Equal(t, int64(3), statuses[1].ID)
	assert.True(t, statuses[1].Paused)
	assert.Equal(t, 0, statuses[1].ArticleCount)
}

func TestManager_StatusCountFailure(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		GetSourcesFunc: func(ctx context.Context) ([]domain.Source, error) {
			return []domain.Source{{ID: 1, URL: "https://a.example.com"}}, nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		CountBySourceFunc: func(ctx context.Context, sourceURL string) (int, error) { return 0, assert.AnError },
	}

	m := New(Params{Sources: sources, Articles: articles, Scraper: &mocks.ScraperMock{}, Bus: events.NewBus()})
	_, err := m.Status(context.Background())
	require.Error(t, err)
}
