package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
)

// nextLinkSelectors are tried first, specific pagination markers beat
// anchor-text guessing
const nextLinkSelectors = "a.pagination__next, a.next-page, a.next, a[rel='next']"

// nextLinkLabels are anchor-text fallbacks in the languages we scrape
var nextLinkLabels = []string{"próxima", "proxima", "next", "seguinte"}

// WalkPages follows "next page" links starting at startURL and returns the
// ordered list of page URLs, startURL always first. The walk stops at
// maxPages, on a missing next link, on a cycle, or on the first fetch
// failure, returning what has been accumulated so far.
func (s *Scraper) WalkPages(ctx context.Context, startURL string, maxPages int) []string {
	var pages []string
	visited := map[string]bool{}
	current := startURL

	for len(pages) < maxPages {
		if current == "" || visited[current] {
			break
		}
		pages = append(pages, current)
		visited[current] = true

		if len(pages) == maxPages {
			break
		}

		doc, err := s.fetcher.FetchDocument(ctx, current)
		if err != nil {
			lgr.Printf("[WARN] pagination walk stopped at %s: %v", current, err)
			break
		}

		next := findNextLink(doc)
		if next == "" {
			break
		}
		current = absoluteURL(next, current)
	}

	return pages
}

// findNextLink locates the href of the next-page link, or "" when the page
// has none
func findNextLink(doc *goquery.Document) string {
	if href := doc.Find(nextLinkSelectors).First().AttrOr("href", ""); href != "" {
		return href
	}

	// anchor-text fallback, the last matching link is usually the real
	// "next" rather than an in-article mention
	var href string
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(a.Text()))
		for _, label := range nextLinkLabels {
			if strings.Contains(text, label) {
				if v := a.AttrOr("href", ""); v != "" {
					href = v
				}
				return
			}
		}
	})
	return href
}
