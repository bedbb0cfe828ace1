package domain

import "time"

// Source represents a monitored news-portal listing URL
type Source struct {
	ID            int64      `json:"id"`
	URL           string     `json:"url"`
	Category      string     `json:"category"`
	Active        bool       `json:"active"`
	Paused        bool       `json:"paused"`
	StartDate     *time.Time `json:"start_date,omitempty"` // informational, not enforced
	EndDate       *time.Time `json:"end_date,omitempty"`   // informational, not enforced
	LastCollected *time.Time `json:"last_collected,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SourceStatus is the live monitoring state of one source
type SourceStatus struct {
	ID            int64      `json:"id"`
	URL           string     `json:"url"`
	Active        bool       `json:"active"`
	Paused        bool       `json:"paused"`
	LastCollected *time.Time `json:"last_collected,omitempty"`
	ArticleCount  int        `json:"article_count"`
}
