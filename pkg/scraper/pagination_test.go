package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_WalkPages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/list":
			fmt.Fprintf(w, `<html><body><a class="next" href="/list?p=2">2</a></body></html>`)
		case "/list2":
			// anchor text fallback, no recognized class
			fmt.Fprintf(w, `<html><body><a href="/list3">Próxima página</a></body></html>`)
		default:
			fmt.Fprint(w, `<html><body>no next link</body></html>`)
		}
	}))
	defer ts.Close()

	s := New(Config{})

	t.Run("follows selector links up to maxPages", func(t *testing.T) {
		pages := s.WalkPages(context.Background(), ts.URL+"/list", 3)
		// /list -> /list?p=2 (no next there) stops the walk
		require.Len(t, pages, 2)
		assert.Equal(t, ts.URL+"/list", pages[0])
		assert.Equal(t, ts.URL+"/list?p=2", pages[1])
	})

	t.Run("anchor text fallback", func(t *testing.T) {
		pages := s.WalkPages(context.Background(), ts.URL+"/list2", 3)
		require.Len(t, pages, 2)
		assert.Equal(t, ts.URL+"/list3", pages[1])
	})

	t.Run("maxPages one skips fetching entirely", func(t *testing.T) {
		pages := s.WalkPages(context.Background(), ts.URL+"/list", 1)
		require.Len(t, pages, 1)
	})

	t.Run("single page without next", func(t *testing.T) {
		pages := s.WalkPages(context.Background(), ts.URL+"/lonely", 3)
		require.Len(t, pages, 1)
	})
}

func TestScraper_WalkPagesEndlessChain(t *testing.T) {
	pages := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// every page links to a fresh next page, the chain never ends
		pages++
		fmt.Fprintf(w, `<html><body><a class="next" href="/p%d">next</a></body></html>`, pages+1)
	}))
	defer ts.Close()

	s := New(Config{})
	got := s.WalkPages(context.Background(), ts.URL+"/p1", 3)
	require.Len(t, got, 3, "maxPages bounds the walk")
	assert.Equal(t, ts.URL+"/p1", got[0])
	assert.Equal(t, ts.URL+"/p2", got[1])
	assert.Equal(t, ts.URL+"/p3", got[2])
}

func TestScraper_WalkPagesCycle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// every page points back at the first one
		fmt.Fprintf(w, `<html><body><a rel="next" href="/loop">next</a></body></html>`)
	}))
	defer ts.Close()

	s := New(Config{})
	pages := s.WalkPages(context.Background(), ts.URL+"/loop", 10)
	assert.Len(t, pages, 1, "cycle detected, walk terminates")
}

func TestScraper_WalkPagesFetchFailure(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `<html><body><a class="next" href="/p2">next</a></body></html>`)
	}))
	defer ts.Close()

	s := New(Config{})
	pages := s.WalkPages(context.Background(), ts.URL+"/p1", 5)
	// first page accumulated and fetched fine, second page URL is known but
	// its fetch fails, so the walk returns both collected URLs minus nothing
	require.Len(t, pages, 2)
	assert.Equal(t, ts.URL+"/p2", pages[1])
}

func TestFindNextLink(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"pagination class", `<a class="pagination__next" href="/n1">x</a>`, "/n1"},
		{"rel next", `<a rel="next" href="/n2">x</a>`, "/n2"},
		{"portuguese label", `<a href="/n3">Próxima</a>`, "/n3"},
		{"english label", `<a href="/n4">Next page</a>`, "/n4"},
		{"last label wins", `<a href="/a">next</a><a href="/b">next</a>`, "/b"},
		{"nothing", `<a href="/x">more news</a>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, "<html><body>"+tt.html+"</body></html>")
			assert.Equal(t, tt.want, findNextLink(doc))
		})
	}
}
