package scraper

import (
	"html"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newswatch/pkg/domain"
)

// Strategy extracts article stubs from one listing page. Implementations
// are registered with a Registry and selected by URL pattern recognition.
type Strategy interface {
	Name() string
	Match(pageURL string) bool
	Extract(body []byte, pageURL string) ([]domain.Stub, error)
}

// Registry dispatches listing extraction to the first matching strategy
// and falls through to the generic heuristic one
type Registry struct {
	strategies []Strategy
	generic    Strategy
}

// NewRegistry creates a registry with the given site-specific strategies.
// The generic strategy is always the fallback and needs no registration.
func NewRegistry(generic Strategy, strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies, generic: generic}
}

// Extract runs the first matching strategy against the page. A strategy that
// fails or yields nothing is logged and the generic heuristics take over.
func (r *Registry) Extract(body []byte, pageURL string) ([]domain.Stub, error) {
	for _, s := range r.strategies {
		if !s.Match(pageURL) {
			continue
		}
		stubs, err := s.Extract(body, pageURL)
		if err != nil {
			lgr.Printf("[WARN] strategy %s failed on %s: %v", s.Name(), pageURL, err)
			break
		}
		if len(stubs) > 0 {
			return stubs, nil
		}
		break // matched but empty, use generic
	}
	return r.generic.Extract(body, pageURL)
}

// textPolicy flattens any markup that leaks into extracted titles and
// summaries, embedded-JSON listings often carry HTML fragments
var textPolicy = bluemonday.StrictPolicy()

// cleanText strips markup and surrounding whitespace from extracted text
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// absoluteURL resolves href against the page URL, returns "" when unusable
func absoluteURL(href, pageURL string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
