package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newswatch/pkg/domain"
)

// FeedStrategy handles sources that point at an RSS or Atom feed instead of
// an HTML listing. Feed items map directly to stubs.
type FeedStrategy struct{}

// NewFeedStrategy creates the RSS/Atom listing strategy
func NewFeedStrategy() *FeedStrategy {
	return &FeedStrategy{}
}

// Name implements Strategy
func (s *FeedStrategy) Name() string { return "feed" }

// Match implements Strategy, recognizing common feed URL shapes
func (s *FeedStrategy) Match(pageURL string) bool {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(strings.TrimSuffix(parsed.Path, "/"))
	return strings.HasSuffix(path, ".rss") ||
		strings.HasSuffix(path, ".atom") ||
		strings.HasSuffix(path, ".xml") ||
		strings.HasSuffix(path, "/feed") ||
		strings.HasSuffix(path, "/rss")
}

// Extract implements Strategy
func (s *FeedStrategy) Extract(body []byte, _ string) ([]domain.Stub, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var stubs []domain.Stub
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		stub := domain.Stub{
			Title:   cleanText(item.Title),
			URL:     item.Link,
			Summary: cleanText(item.Description),
		}

		if item.Image != nil {
			stub.ImageURL = item.Image.URL
		}
		if item.PublishedParsed != nil {
			stub.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			stub.Published = item.UpdatedParsed
		}

		stubs = append(stubs, stub)
	}
	return stubs, nil
}
