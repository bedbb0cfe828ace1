package events

import (
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Type discriminates event kinds on the wire
type Type string

// event kinds published by the monitoring engine and the SSE transport
const (
	TypeConnected           Type = "connected"
	TypeHeartbeat           Type = "heartbeat"
	TypeMonitoringStarted   Type = "monitoring_started"
	TypeMonitoringStopped   Type = "monitoring_stopped"
	TypeNewArticle          Type = "new_article"
	TypeCollectionCompleted Type = "collection_completed"
	TypeError               Type = "error"
)

// Event is a single notification message. Type is always set, the rest of
// the fields are populated per kind and mostly omitted from JSON when
// empty. The run counters always serialize, zero new articles is a real
// result for collection_completed consumers.
type Event struct {
	Type           Type         `json:"type"`
	SourceID       int64        `json:"source_id,omitempty"`
	Message        string       `json:"message,omitempty"`
	Article        *ArticleInfo `json:"article,omitempty"`
	NewCount       int          `json:"new_count"`
	TotalProcessed int          `json:"total_processed"`
	Timestamp      time.Time    `json:"timestamp,omitzero"`
}

// ArticleInfo is the projection of a new article carried by new_article events
type ArticleInfo struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	ImageURL  string     `json:"image_url,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Category  string     `json:"category"`
	Published *time.Time `json:"published,omitempty"`
}

// Bus is an in-process publish/subscribe fabric. Delivery is synchronous and
// per-subscriber fault isolated, no persistence and no replay.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

// NewBus creates an event bus with no subscribers
func NewBus() *Bus {
	return &Bus{subs: map[int]func(Event){}}
}

// Subscribe registers a callback for all future events and returns its
// unsubscribe function. Unsubscribe is idempotent.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers the event to every current subscriber. A panicking
// subscriber is logged and does not prevent delivery to the others.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	subs := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		b.deliver(fn, e)
	}
}

// Count returns the number of active subscribers
func (b *Bus) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) deliver(fn func(Event), e Event) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] event subscriber failed on %s: %v", e.Type, r)
		}
	}()
	fn(e)
}
