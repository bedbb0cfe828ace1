// Package monitor owns the per-source collection scheduler: one recurring
// timer per monitored source, idempotent collection runs, dedup-on-insert
// and event publishing for live subscribers.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/events"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// SourceStore is the monitored-source persistence used by the manager
type SourceStore interface {
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetSources(ctx context.Context) ([]domain.Source, error)
	SetSourcePaused(ctx context.Context, id int64, paused bool) error
	UpdateSourceCollected(ctx context.Context, id int64, ts time.Time) error
}

// ArticleStore is the article persistence used by collection runs
type ArticleStore interface {
	ArticleExists(ctx context.Context, url string) (bool, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
	CountBySource(ctx context.Context, sourceURL string) (int, error)
}

// Scraper covers pagination walking, stub extraction and full content
// extraction for one source
type Scraper interface {
	WalkPages(ctx context.Context, startURL string, maxPages int) []string
	ExtractStubs(ctx context.Context, pageURL string) ([]domain.Stub, error)
	ExtractContent(ctx context.Context, articleURL string) (string, error)
}

// Summarizer produces a short summary for an article, may be nil
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// Params holds manager dependencies and settings
type Params struct {
	Sources    SourceStore
	Articles   ArticleStore
	Scraper    Scraper
	Summarizer Summarizer // optional
	Bus        *events.Bus

	Interval time.Duration // default collection interval per source
	MaxPages int           // listing pages walked per run
}

// Manager schedules collection runs, one timer per source. Scheduler state
// is process local, a restart loses live timers until sources are re-armed.
type Manager struct {
	sources    SourceStore
	articles   ArticleStore
	scraper    Scraper
	summarizer Summarizer
	bus        *events.Bus

	interval time.Duration
	maxPages int

	mu     sync.Mutex
	active map[int64]context.CancelFunc
}

// New creates a monitoring manager
func New(p Params) *Manager {
	if p.Interval == 0 {
		p.Interval = 5 * time.Minute
	}
	if p.MaxPages == 0 {
		p.MaxPages = 3
	}

	return &Manager{
		sources:    p.Sources,
		articles:   p.Articles,
		scraper:    p.Scraper,
		summarizer: p.Summarizer,
		bus:        p.Bus,
		interval:   p.Interval,
		maxPages:   p.MaxPages,
	}
}

// Start begins monitoring a source: an immediate collection run followed by
// one run per interval. A second Start for an already-active source is a
// logged no-op. Returns the store's not-found error when the source id is
// unknown. interval <= 0 uses the configured default.
func (m *Manager) Start(ctx context.Context, sourceID int64, interval time.Duration) error {
	if interval <= 0 {
		interval = m.interval
	}

	// check-and-set under lock, at most one timer per source
	m.mu.Lock()
	if _, ok := m.active[sourceID]; ok {
		m.mu.Unlock()
		lgr.Printf("[INFO] monitoring already active for source %d", sourceID)
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	if m.active == nil {
		m.active = map[int64]context.CancelFunc{}
	}
	m.active[sourceID] = cancel
	m.mu.Unlock()

	src, err := m.sources.GetSource(ctx, sourceID)
	if err != nil {
		m.unregister(sourceID)
		cancel()
		return fmt.Errorf("start monitoring %d: %w", sourceID, err)
	}

	// first collection runs synchronously, a failure is reported like any
	// tick failure and leaves the timer armed
	if err := m.Collect(runCtx, src.ID); err != nil {
		lgr.Printf("[ERROR] initial collection for source %d failed: %v", sourceID, err)
		m.bus.Publish(events.Event{Type: events.TypeError, SourceID: sourceID, Message: "failed to collect articles"})
	}

	go m.runTimer(runCtx, sourceID, interval)

	lgr.Printf("[INFO] monitoring started for source %d (%s) every %v", sourceID, src.URL, interval)
	m.bus.Publish(events.Event{Type: events.TypeMonitoringStarted, SourceID: sourceID})
	return nil
}

// unregister clears the source's active flag without emitting events,
// used to roll back a failed Start
func (m *Manager) unregister(sourceID int64) {
	m.mu.Lock()
	delete(m.active, sourceID)
	m.mu.Unlock()
}

// Stop cancels the source's timer and clears its active flag. Idempotent,
// always emits a monitoring_stopped event. An in-flight run is not
// interrupted, only future ticks are prevented.
func (m *Manager) Stop(sourceID int64) {
	m.mu.Lock()
	if cancel, ok := m.active[sourceID]; ok {
		cancel()
		delete(m.active, sourceID)
	}
	m.mu.Unlock()

	lgr.Printf("[INFO] monitoring stopped for source %d", sourceID)
	m.bus.Publish(events.Event{Type: events.TypeMonitoringStopped, SourceID: sourceID})
}

// Pause persists paused=true on the source and stops its timer
func (m *Manager) Pause(ctx context.Context, sourceID int64) error {
	if err := m.sources.SetSourcePaused(ctx, sourceID, true); err != nil {
		return fmt.Errorf("pause source %d: %w", sourceID, err)
	}
	m.Stop(sourceID)
	return nil
}

// Resume persists paused=false and re-arms monitoring from scratch,
// triggering an immediate run
func (m *Manager) Resume(ctx context.Context, sourceID int64) error {
	if err := m.sources.SetSourcePaused(ctx, sourceID, false); err != nil {
		return fmt.Errorf("resume source %d: %w", sourceID, err)
	}
	return m.Start(ctx, sourceID, 0)
}

// StopAll cancels every timer and clears all active flags, the process
// shutdown hook
func (m *Manager) StopAll() {
	m.mu.Lock()
	for id, cancel := range m.active {
		cancel()
		delete(m.active, id)
	}
	m.mu.Unlock()
	lgr.Printf("[INFO] all monitoring stopped")
}

// Active reports whether a timer is armed for the source
func (m *Manager) Active(sourceID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.active[sourceID]
	return ok
}

// runTimer fires one collection per interval until the run context is
// canceled. A failing tick is reported and leaves the timer armed.
func (m *Manager) runTimer(ctx context.Context, sourceID int64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.Active(sourceID) {
				return
			}
			if err := m.Collect(ctx, sourceID); err != nil {
				lgr.Printf("[ERROR] collection for source %d failed: %v", sourceID, err)
				m.bus.Publish(events.Event{Type: events.TypeError, SourceID: sourceID, Message: "failed to collect articles"})
			}
		}
	}
}
