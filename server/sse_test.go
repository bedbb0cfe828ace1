package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswatch/pkg/events"
	"github.com/umputun/newswatch/server/mocks"
)

func TestServer_SSE(t *testing.T) {
	bus := events.NewBus()
	s := New(Config{Listen: "127.0.0.1:0", Timeout: time.Second, Version: "test"},
		&mocks.SourceStoreMock{}, &mocks.ArticleStoreMock{}, &mocks.MonitorMock{}, nil, bus)
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() events.Event {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var e events.Event
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &e))
			return e
		}
	}

	greeting := readEvent()
	assert.Equal(t, events.TypeConnected, greeting.Type)
	assert.False(t, greeting.Timestamp.IsZero(), "events are stamped on the wire")

	// the subscription is live once the greeting arrived
	bus.Publish(events.Event{Type: events.TypeNewArticle, SourceID: 3,
		Article: &events.ArticleInfo{ID: 11, Title: "Breaking"}})

	e := readEvent()
	require.Equal(t, events.TypeNewArticle, e.Type)
	assert.Equal(t, int64(3), e.SourceID)
	require.NotNil(t, e.Article)
	assert.Equal(t, "Breaking", e.Article.Title)

	cancel()
	// disconnect drops the subscription, give the handler a moment to unwind
	require.Eventually(t, func() bool { return bus.Count() == 0 }, time.Second, 10*time.Millisecond)
}
