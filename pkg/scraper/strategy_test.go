package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswatch/pkg/domain"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// stubStrategy is a canned strategy for registry dispatch tests
type stubStrategy struct {
	name    string
	matches bool
	stubs   []domain.Stub
	err     error
}

func (s *stubStrategy) Name() string      { return s.name }
func (s *stubStrategy) Match(string) bool { return s.matches }
func (s *stubStrategy) Extract([]byte, string) ([]domain.Stub, error) {
	return s.stubs, s.err
}

func TestRegistry_Extract(t *testing.T) {
	genericStubs := []domain.Stub{{Title: "generic", URL: "https://example.com/g"}}
	siteStubs := []domain.Stub{{Title: "site", URL: "https://example.com/s"}}

	tests := []struct {
		name  string
		site  *stubStrategy
		want  string
		pages string
	}{
		{"matching strategy wins", &stubStrategy{name: "site", matches: true, stubs: siteStubs}, "site", ""},
		{"non-matching skipped", &stubStrategy{name: "site", matches: false, stubs: siteStubs}, "generic", ""},
		{"failed strategy falls back", &stubStrategy{name: "site", matches: true, err: fmt.Errorf("broken json")}, "generic", ""},
		{"empty result falls back", &stubStrategy{name: "site", matches: true}, "generic", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generic := &stubStrategy{name: "generic", matches: true, stubs: genericStubs}
			r := NewRegistry(generic, tt.site)

			stubs, err := r.Extract([]byte("<html></html>"), "https://example.com")
			require.NoError(t, err)
			require.Len(t, stubs, 1)
			assert.Equal(t, tt.want, stubs[0].Title)
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{"<b>bold</b> claim", "bold claim"},
		{"a &amp; b", "a & b"},
		{"<script>alert(1)</script>safe", "safe"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanText(tt.in), "input %q", tt.in)
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		href string
		page string
		want string
	}{
		{"/news/1", "https://example.com/list", "https://example.com/news/1"},
		{"https://other.com/x", "https://example.com", "https://other.com/x"},
		{"relative", "https://example.com/section/", "https://example.com/section/relative"},
		{"javascript:void(0)", "https://example.com", ""},
		{"", "https://example.com", ""},
		{"  /trimmed  ", "https://example.com", "https://example.com/trimmed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, absoluteURL(tt.href, tt.page), "href %q", tt.href)
	}
}
