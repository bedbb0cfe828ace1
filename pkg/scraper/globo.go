package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/umputun/newswatch/pkg/domain"
)

// GloboStrategy parses g1.globo.com listing pages. Their listings embed the
// article feed as JSON inside the #bstn-container element, which is far more
// reliable than the rendered markup.
type GloboStrategy struct{}

// NewGloboStrategy creates the g1.globo.com listing strategy
func NewGloboStrategy() *GloboStrategy {
	return &GloboStrategy{}
}

// Name implements Strategy
func (s *GloboStrategy) Name() string { return "globo" }

// Match implements Strategy
func (s *GloboStrategy) Match(pageURL string) bool {
	return strings.Contains(pageURL, "g1.globo.com")
}

// globoFeed mirrors the embedded listing JSON, only the fields we use
type globoFeed struct {
	Items []struct {
		Content globoContent `json:"content"`
	} `json:"items"`
}

type globoContent struct {
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Summary     string      `json:"summary"`
	Publication string      `json:"publication"`
	Image       *globoImage `json:"image"`
}

type globoImage struct {
	URL   string `json:"url"`
	Sizes map[string]struct {
		URL string `json:"url"`
	} `json:"sizes"`
}

// Extract implements Strategy. Only items of type "materia" qualify.
// Malformed embedded JSON is a ParseError, the registry falls back to the
// generic heuristics.
func (s *GloboStrategy) Extract(body []byte, _ string) ([]domain.Stub, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	raw := strings.TrimSpace(doc.Find("#bstn-container").Text())
	if raw == "" {
		return nil, nil
	}

	var feed globoFeed
	if err := json.Unmarshal([]byte(raw), &feed); err != nil {
		return nil, fmt.Errorf("parse embedded listing json: %w", err)
	}

	var stubs []domain.Stub
	for _, item := range feed.Items {
		content := item.Content
		if content.Type != "materia" || content.Title == "" || content.URL == "" {
			continue
		}

		stub := domain.Stub{
			Title:    cleanText(content.Title),
			URL:      content.URL,
			Summary:  cleanText(content.Summary),
			ImageURL: s.smallestImage(content.Image),
		}

		if content.Publication != "" {
			if published, err := time.Parse(time.RFC3339, content.Publication); err == nil {
				stub.Published = &published
			}
		}

		stubs = append(stubs, stub)
	}
	return stubs, nil
}

// smallestImage picks the smallest available variant to keep event payloads
// and stored records light
func (s *GloboStrategy) smallestImage(img *globoImage) string {
	if img == nil {
		return ""
	}
	for _, size := range []string{"S", "M", "L"} {
		if variant, ok := img.Sizes[size]; ok && variant.URL != "" {
			return variant.URL
		}
	}
	return img.URL
}
