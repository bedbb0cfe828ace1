package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedStrategy_Match(t *testing.T) {
	s := NewFeedStrategy()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/news.rss", true},
		{"https://example.com/feed.atom", true},
		{"https://example.com/rss.xml", true},
		{"https://example.com/blog/feed", true},
		{"https://example.com/blog/feed/", true},
		{"https://example.com/rss", true},
		{"https://example.com/politics", false},
		{"https://example.com/rss-guide.html", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Match(tt.url), "url %s", tt.url)
	}
}

func TestFeedStrategy_Extract(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <item>
      <title>Feed story</title>
      <link>https://example.com/news/1</link>
      <description>A &lt;b&gt;bold&lt;/b&gt; description</description>
      <pubDate>Sun, 30 Aug 2026 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title></title>
      <link>https://example.com/news/2</link>
    </item>
  </channel>
</rss>`)

	stubs, err := NewFeedStrategy().Extract(body, "https://example.com/news.rss")
	require.NoError(t, err)
	require.Len(t, stubs, 1, "item without title is dropped")

	assert.Equal(t, "Feed story", stubs[0].Title)
	assert.Equal(t, "https://example.com/news/1", stubs[0].URL)
	assert.Equal(t, "A bold description", stubs[0].Summary, "markup stripped")
	require.NotNil(t, stubs[0].Published)
	assert.Equal(t, 2026, stubs[0].Published.Year())
}

func TestFeedStrategy_ExtractBroken(t *testing.T) {
	_, err := NewFeedStrategy().Extract([]byte("not a feed at all"), "https://example.com/news.rss")
	require.Error(t, err)
}
