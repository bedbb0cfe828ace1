// Package server exposes the REST API, the SSE event stream and the export
// endpoints over the monitoring engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/events"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/monitor.go -pkg mocks -skip-ensure -fmt goimports . Monitor
//go:generate moq -out mocks/rewriter.go -pkg mocks -skip-ensure -fmt goimports . Rewriter

// SourceStore is the persistence surface for monitored sources
type SourceStore interface {
	CreateSource(ctx context.Context, src *domain.Source) error
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetSources(ctx context.Context) ([]domain.Source, error)
	DeleteSource(ctx context.Context, id int64) error
	CountSources(ctx context.Context) (total, active int, err error)
}

// ArticleStore is the persistence surface for collected articles
type ArticleStore interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	CountArticles(ctx context.Context, filter domain.ArticleFilter) (int, error)
	SetSelected(ctx context.Context, id int64, selected bool) error
	UpdateRewritten(ctx context.Context, id int64, text string) error
	DeleteArticle(ctx context.Context, id int64) error
	GetPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.PublishedArticle, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	DailyCounts(ctx context.Context, days int) ([]domain.DayCount, error)
	TopSources(ctx context.Context, limit int) ([]domain.SourceCount, error)
	RecentArticles(ctx context.Context, limit int) ([]domain.RecentArticle, error)
}

// Monitor controls per-source collection timers and on-demand runs
type Monitor interface {
	Start(ctx context.Context, sourceID int64, interval time.Duration) error
	Stop(sourceID int64)
	Pause(ctx context.Context, sourceID int64) error
	Resume(ctx context.Context, sourceID int64) error
	Collect(ctx context.Context, sourceID int64) error
	Active(sourceID int64) bool
	Status(ctx context.Context) ([]domain.SourceStatus, error)
}

// Rewriter produces an editorial rewrite of an article, may be nil when
// no LLM endpoint is configured
type Rewriter interface {
	Rewrite(ctx context.Context, title, content string) (string, error)
}

// Config holds server parameters
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	sources  SourceStore
	articles ArticleStore
	monitor  Monitor
	rewriter Rewriter
	bus      *events.Bus

	listen  string
	timeout time.Duration
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, sources SourceStore, articles ArticleStore, monitor Monitor, rewriter Rewriter, bus *events.Bus) *Server {
	s := &Server{
		sources:  sources,
		articles: articles,
		monitor:  monitor,
		rewriter: rewriter,
		bus:      bus,
		listen:   cfg.Listen,
		timeout:  cfg.Timeout,
		version:  cfg.Version,
		debug:    cfg.Debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:        s.listen,
		Handler:     s.router,
		ReadTimeout: s.timeout,
		// no write timeout, the SSE stream stays open for the client's lifetime
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newswatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /sources", s.listSourcesHandler)
		r.HandleFunc("POST /sources", s.createSourceHandler)
		r.HandleFunc("GET /sources/{id}", s.getSourceHandler)
		r.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		r.HandleFunc("PATCH /sources/{id}", s.patchSourceHandler)
		r.HandleFunc("POST /sources/{id}/refresh", s.refreshSourceHandler)

		r.HandleFunc("GET /monitor", s.monitorStatusHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("DELETE /articles/{id}", s.deleteArticleHandler)
		r.HandleFunc("PUT /articles/{id}/selected", s.selectArticleHandler)
		r.HandleFunc("POST /articles/rewrite", s.rewriteHandler)
		r.HandleFunc("GET /published", s.publishedHandler)

		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /export", s.exportHandler)
	})

	s.router.HandleFunc("GET /events", s.sseHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":      "ok",
		"version":     s.version,
		"subscribers": s.bus.Count(),
		"time":        time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
