package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/events"
	"github.com/umputun/newswatch/pkg/monitor"
	"github.com/umputun/newswatch/pkg/monitor/mocks"
	"github.com/umputun/newswatch/pkg/repository"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 5, cfg.Monitor.IntervalMinutes)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		data := `
server:
  listen: ":9999"
monitor:
  interval_minutes: 15
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Listen)
		assert.Equal(t, 15, cfg.Monitor.IntervalMinutes)
		assert.Equal(t, 3, cfg.Monitor.MaxPages, "defaults fill the gaps")
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

		_, err := loadConfig(path)
		require.Error(t, err)
	})
}

func TestRearmSources(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	active := &domain.Source{URL: "https://news.example.com/politics", Category: "politics", Active: true}
	inactive := &domain.Source{URL: "https://news.example.com/old", Category: "general", Active: false}
	paused := &domain.Source{URL: "https://news.example.com/sports", Category: "sports", Active: true}
	for _, src := range []*domain.Source{active, inactive, paused} {
		require.NoError(t, repos.Source.CreateSource(ctx, src))
	}
	require.NoError(t, repos.Source.SetSourcePaused(ctx, paused.ID, true))

	bus := events.NewBus()
	var completed int64
	bus.Subscribe(func(e events.Event) {
		if e.Type == events.TypeCollectionCompleted && e.SourceID == active.ID {
			atomic.AddInt64(&completed, 1)
		}
	})

	mgr := monitor.New(monitor.Params{
		Sources:  repos.Source,
		Articles: repos.Article,
		Scraper: &mocks.ScraperMock{
			WalkPagesFunc: func(ctx context.Context, startURL string, maxPages int) []string { return nil },
		},
		Bus:      bus,
		Interval: 20 * time.Millisecond,
	})
	defer mgr.StopAll()

	require.NoError(t, rearmSources(ctx, mgr, repos.Source))

	assert.True(t, mgr.Active(active.ID))
	assert.False(t, mgr.Active(inactive.ID))
	assert.False(t, mgr.Active(paused.ID))

	// the timer must keep firing after rearmSources returned, not just the
	// initial synchronous run
	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&completed) >= 3
	}, 2*time.Second, 10*time.Millisecond, "periodic collection keeps running")
}

func TestSetupLog(t *testing.T) {
	// exercises the option paths, no assertions beyond not panicking
	setupLog(false)
	setupLog(true)
	setupLog(true, "secret-key", "")
}
