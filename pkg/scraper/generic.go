package scraper

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"github.com/umputun/newswatch/pkg/domain"
)

// cardSelectors are tried in order, the first one matching at least one
// element wins for the whole page
var cardSelectors = []string{
	"article",
	".noticia",
	".post",
	".entry",
	".card",
	"[class*='article']",
	"[class*='noticia']",
	"[class*='post']",
}

// titleSelectors locate the headline inside one card
const titleSelectors = "h1, h2, h3, .titulo, .title, [class*='title']"

// summarySelectors locate a short description inside one card
const summarySelectors = "p, .resumo, .excerpt, [class*='description']"

// dateSelectors locate a textual date label inside one card
const dateSelectors = "[class*='date'], [class*='data']"

// GenericStrategy extracts stubs from arbitrary news listings using common
// "article card" markup heuristics. It is the registry fallback and matches
// every URL.
type GenericStrategy struct{}

// NewGenericStrategy creates the heuristic fallback strategy
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{}
}

// Name implements Strategy
func (s *GenericStrategy) Name() string { return "generic" }

// Match implements Strategy, the generic heuristics apply to any page
func (s *GenericStrategy) Match(string) bool { return true }

// Extract implements Strategy. A card lacking a usable title or URL is
// dropped, not returned as a partial stub.
func (s *GenericStrategy) Extract(body []byte, pageURL string) ([]domain.Stub, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var stubs []domain.Stub
	for _, selector := range cardSelectors {
		doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
			if stub, ok := s.extractCard(card, pageURL); ok {
				stubs = append(stubs, stub)
			}
		})
		if len(stubs) > 0 {
			break
		}
	}
	return stubs, nil
}

// extractCard pulls a stub out of one matched card element
func (s *GenericStrategy) extractCard(card *goquery.Selection, pageURL string) (domain.Stub, bool) {
	title := cleanText(card.Find(titleSelectors).First().Text())
	if title == "" {
		// some cards carry the headline only in the link's title attribute
		title = strings.TrimSpace(card.Find("a").First().AttrOr("title", ""))
	}
	if title == "" {
		return domain.Stub{}, false
	}

	link := absoluteURL(card.Find("a").First().AttrOr("href", ""), pageURL)
	if link == "" {
		return domain.Stub{}, false
	}

	stub := domain.Stub{
		Title:    title,
		URL:      link,
		ImageURL: cardImage(card),
		Summary:  cleanText(card.Find(summarySelectors).First().Text()),
	}

	if published, ok := cardDate(card); ok {
		stub.Published = &published
	}
	return stub, true
}

// cardImage finds the most plausible content image of a card. The first
// image is preferred, but when its source is empty or it looks like an
// avatar the second image is usually the real one.
func cardImage(card *goquery.Selection) string {
	images := card.Find("img")
	first := imageSrc(images.First())
	if images.Length() > 1 {
		second := imageSrc(images.Eq(1))
		if first == "" || (second != "" && looksLikeAvatar(first)) {
			return second
		}
	}
	return first
}

func imageSrc(img *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v := strings.TrimSpace(img.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}

func looksLikeAvatar(src string) bool {
	lower := strings.ToLower(src)
	for _, marker := range []string{"avatar", "logo", "icon", "profile"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// cardDate finds a publication date, preferring a machine-readable datetime
// attribute over a textual label. Unparseable dates are discarded.
func cardDate(card *goquery.Selection) (time.Time, bool) {
	raw := strings.TrimSpace(card.Find("time").First().AttrOr("datetime", ""))
	if raw == "" {
		raw = strings.TrimSpace(card.Find(dateSelectors).First().Text())
	}
	if raw == "" {
		return time.Time{}, false
	}

	// the target portals write dd/mm, so 30/08 is a day, not a month
	parsed, err := dateparse.ParseAny(raw, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
