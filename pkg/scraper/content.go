package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strippedElements never contain article text and often pollute it
const strippedElements = "script, style, nav, header, footer, aside, .comments, .ads, .advertisement"

// bodySelectors are common article body containers, tried in order
var bodySelectors = []string{
	"article",
	".content",
	".post-content",
	".entry-content",
	"[class*='article-body']",
	"[class*='content']",
	"main",
}

// ExtractContent fetches an article page and returns its main body text:
// all sufficiently long paragraphs of the first qualifying container,
// joined by blank lines. When no container qualifies it falls back to
// scanning every paragraph on the page. Fetch failures surface as
// *FetchError scoped to this single article.
func (s *Scraper) ExtractContent(ctx context.Context, articleURL string) (string, error) {
	doc, err := s.fetcher.FetchDocument(ctx, articleURL)
	if err != nil {
		return "", err
	}

	doc.Find(strippedElements).Remove()

	for _, selector := range bodySelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		if text := s.joinParagraphs(container); text != "" {
			return text, nil
		}
	}

	// fallback: every paragraph on the page
	return s.joinParagraphs(doc.Selection), nil
}

// joinParagraphs concatenates paragraphs longer than the configured minimum
func (s *Scraper) joinParagraphs(sel *goquery.Selection) string {
	var paragraphs []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > s.minParagraph {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
