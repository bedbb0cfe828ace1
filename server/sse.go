package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswatch/pkg/events"
)

// heartbeatInterval keeps idle SSE connections from being reaped by proxies
const heartbeatInterval = 30 * time.Second

// sseHandler streams monitoring events to the client. Sends a greeting on
// connect, then every bus event as it happens, with periodic heartbeats.
// The subscription lasts until the client disconnects.
func (s *Server) sseHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		renderError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// the bus delivers from publisher goroutines, the channel moves events
	// onto this handler's goroutine. Slow clients drop events rather than
	// stall the publishers.
	ch := make(chan events.Event, 64)
	unsubscribe := s.bus.Subscribe(func(e events.Event) {
		select {
		case ch <- e:
		default:
			lgr.Printf("[WARN] slow sse client, event %s dropped", e.Type)
		}
	})
	defer unsubscribe()

	lgr.Printf("[INFO] sse client connected, %d active", s.bus.Count())

	writeEvent := func(e events.Event) bool {
		if e.Timestamp.IsZero() {
			e.Timestamp = time.Now().UTC()
		}
		data, err := json.Marshal(e)
		if err != nil {
			lgr.Printf("[WARN] failed to marshal sse event: %v", err)
			return true
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !writeEvent(events.Event{Type: events.TypeConnected, Message: "Connection established"}) {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			lgr.Printf("[INFO] sse client disconnected")
			return
		case e := <-ch:
			if !writeEvent(e) {
				return
			}
		case <-heartbeat.C:
			if !writeEvent(events.Event{Type: events.TypeHeartbeat}) {
				return
			}
		}
	}
}
