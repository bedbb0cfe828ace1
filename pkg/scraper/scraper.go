// Package scraper fetches news-portal listing pages, extracts article stubs
// through a strategy registry, walks pagination and pulls full article text.
package scraper

import (
	"context"
	"time"

	"github.com/umputun/newswatch/pkg/domain"
)

// Config holds scraper settings
type Config struct {
	Timeout      time.Duration // per-fetch timeout
	UserAgent    string
	MinParagraph int // minimum paragraph length kept by the content extractor
}

// Scraper combines the fetcher, the strategy registry and the content
// extraction heuristics behind one façade used by the monitor
type Scraper struct {
	fetcher      *Fetcher
	registry     *Registry
	minParagraph int
}

// New creates a scraper with the default strategy set: embedded-JSON and
// feed listings when recognized, generic card heuristics otherwise
func New(cfg Config) *Scraper {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if cfg.MinParagraph == 0 {
		cfg.MinParagraph = 30
	}

	return &Scraper{
		fetcher:      NewFetcher(cfg.Timeout, cfg.UserAgent),
		registry:     NewRegistry(NewGenericStrategy(), NewGloboStrategy(), NewFeedStrategy()),
		minParagraph: cfg.MinParagraph,
	}
}

// ExtractStubs fetches one listing page and extracts its article stubs
func (s *Scraper) ExtractStubs(ctx context.Context, pageURL string) ([]domain.Stub, error) {
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.registry.Extract(body, pageURL)
}
