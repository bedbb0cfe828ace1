package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newswatch/pkg/domain"
	"github.com/umputun/newswatch/pkg/events"
	"github.com/umputun/newswatch/pkg/repository"
)

// Collect performs one collection run for a source: walk pagination,
// extract stubs from every listing page, store the ones not seen before and
// publish events along the way. Failures scoped to one page or one stub are
// logged and the run continues, a failure loading the source propagates.
func (m *Manager) Collect(ctx context.Context, sourceID int64) error {
	// defensive re-check, the record may have changed since the caller
	// decided to run
	src, err := m.sources.GetSource(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("load source %d: %w", sourceID, err)
	}
	if !src.Active || src.Paused {
		lgr.Printf("[DEBUG] source %d inactive or paused, skipping collection", sourceID)
		return nil
	}

	lgr.Printf("[INFO] collecting articles from %s", src.URL)

	pages := m.scraper.WalkPages(ctx, src.URL, m.maxPages)

	var stubs []domain.Stub
	for _, pageURL := range pages {
		pageStubs, err := m.scraper.ExtractStubs(ctx, pageURL)
		if err != nil {
			lgr.Printf("[WARN] failed to extract stubs from %s: %v", pageURL, err)
			continue
		}
		stubs = append(stubs, pageStubs...)
	}

	lgr.Printf("[DEBUG] found %d stubs across %d pages for %s", len(stubs), len(pages), src.URL)

	newCount := 0
	for _, stub := range stubs {
		created, err := m.processStub(ctx, src, stub)
		if err != nil {
			lgr.Printf("[WARN] failed to process %s: %v", stub.URL, err)
			continue
		}
		if created {
			newCount++
		}
	}

	if err := m.sources.UpdateSourceCollected(ctx, src.ID, time.Now()); err != nil {
		lgr.Printf("[WARN] failed to update last collected for source %d: %v", src.ID, err)
	}

	lgr.Printf("[INFO] collection completed for %s: %d new of %d processed", src.URL, newCount, len(stubs))
	m.bus.Publish(events.Event{
		Type:           events.TypeCollectionCompleted,
		SourceID:       src.ID,
		NewCount:       newCount,
		TotalProcessed: len(stubs),
	})

	return nil
}

// processStub stores one discovered stub unless its URL is already known.
// Returns true when a new article was inserted.
func (m *Manager) processStub(ctx context.Context, src *domain.Source, stub domain.Stub) (bool, error) {
	exists, err := m.articles.ArticleExists(ctx, stub.URL)
	if err != nil {
		return false, fmt.Errorf("check existing: %w", err)
	}
	if exists {
		return false, nil
	}

	content, err := m.scraper.ExtractContent(ctx, stub.URL)
	if err != nil {
		return false, fmt.Errorf("extract content: %w", err)
	}

	// summarize only when the listing gave no summary, a summarizer
	// failure leaves the field empty rather than dropping the article
	summary := stub.Summary
	if summary == "" && content != "" && m.summarizer != nil {
		if generated, serr := m.summarizer.Summarize(ctx, stub.Title, content); serr != nil {
			lgr.Printf("[WARN] failed to summarize %s: %v", stub.URL, serr)
		} else {
			summary = generated
		}
	}

	published := time.Now()
	if stub.Published != nil {
		published = *stub.Published
	}

	article := &domain.Article{
		URL:       stub.URL,
		Title:     stub.Title,
		Published: published,
		Category:  src.Category,
		Content:   content,
		ImageURL:  stub.ImageURL,
		Summary:   summary,
		SourceURL: src.URL,
	}

	if err := m.articles.CreateArticle(ctx, article); err != nil {
		// the unique index backstops concurrent runs for the same source,
		// losing this race is not a failure
		if errors.Is(err, repository.ErrAlreadyExists) {
			lgr.Printf("[DEBUG] article %s inserted by a concurrent run", stub.URL)
			return false, nil
		}
		return false, fmt.Errorf("store article: %w", err)
	}

	lgr.Printf("[INFO] new article stored: %s", stub.Title)
	m.bus.Publish(events.Event{
		Type:     events.TypeNewArticle,
		SourceID: src.ID,
		Article: &events.ArticleInfo{
			ID:        article.ID,
			Title:     article.Title,
			URL:       article.URL,
			ImageURL:  article.ImageURL,
			Summary:   article.Summary,
			Category:  article.Category,
			Published: &article.Published,
		},
	})

	return true, nil
}

// Status reports the live state of every monitored source. Per-source
// article counts run concurrently, a source record missing its URL is
// logged and skipped rather than failing the whole report.
func (m *Manager) Status(ctx context.Context) ([]domain.SourceStatus, error) {
	sources, err := m.sources.GetSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	statuses := make([]*domain.SourceStatus, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		if src.URL == "" {
			lgr.Printf("[WARN] source %d has no url, skipped in status", src.ID)
			continue
		}
		g.Go(func() error {
			count, err := m.articles.CountBySource(ctx, src.URL)
			if err != nil {
				return fmt.Errorf("count articles for %s: %w", src.URL, err)
			}
			statuses[i] = &domain.SourceStatus{
				ID:            src.ID,
				URL:           src.URL,
				Active:        src.Active,
				Paused:        src.Paused,
				LastCollected: src.LastCollected,
				ArticleCount:  count,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]domain.SourceStatus, 0, len(statuses))
	for _, s := range statuses {
		if s != nil {
			result = append(result, *s)
		}
	}
	return result, nil
}
