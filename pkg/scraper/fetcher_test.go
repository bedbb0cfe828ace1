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

func TestFetcher_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept"), "browser headers set")
		fmt.Fprint(w, "page body")
	}))
	defer ts.Close()

	f := NewFetcher(0, "test-agent")
	body, err := f.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "page body", string(body))
}

func TestFetcher_FetchErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer ts.Close()

	f := NewFetcher(0, "test-agent")

	t.Run("bad status", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), ts.URL)
		require.Error(t, err)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, fetchErr.Error(), "418")
	})

	t.Run("relative url rejected", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "/no-host")
		require.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
		require.Error(t, err)
	})
}

func TestFetcher_FetchDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Headline</h1></body></html>`)
	}))
	defer ts.Close()

	f := NewFetcher(0, "test-agent")
	doc, err := f.FetchDocument(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "Headline", doc.Find("h1").Text())
}
