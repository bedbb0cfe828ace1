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

func TestScraper_ExtractStubs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<article><h2>Listing headline</h2><a href="/news/1"></a></article>
		</body></html>`)
	}))
	defer ts.Close()

	s := New(Config{})
	stubs, err := s.ExtractStubs(context.Background(), ts.URL+"/politics")
	require.NoError(t, err)
	require.Len(t, stubs, 1)
	assert.Equal(t, "Listing headline", stubs[0].Title)
	assert.Equal(t, ts.URL+"/news/1", stubs[0].URL)
}

func TestScraper_ExtractStubsFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	s := New(Config{})
	_, err := s.ExtractStubs(context.Background(), ts.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, 30, s.minParagraph)
	require.NotNil(t, s.fetcher)
	require.NotNil(t, s.registry)
}
