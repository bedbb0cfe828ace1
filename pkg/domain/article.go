package domain

import "time"

// Article represents a collected news article. URL is the dedup key,
// unique across all stored articles.
type Article struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Published     time.Time `json:"published"`
	Category      string    `json:"category"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	CollectedAt   time.Time `json:"collected_at"`
	Selected      bool      `json:"selected"`
	Rewritten     bool      `json:"rewritten"`
	RewrittenText string    `json:"rewritten_text,omitempty"`
	SourceURL     string    `json:"source_url"` // back-reference to Source.URL, lookup-only
}

// Stub is a lightweight reference to an article extracted from a listing
// page, before the full content fetch
type Stub struct {
	Title     string
	URL       string
	ImageURL  string
	Summary   string
	Published *time.Time
}

// ArticleFilter represents filtering criteria for article queries.
// Nil pointer fields mean "no constraint".
type ArticleFilter struct {
	Category  string
	Query     string // matched against title, summary and content
	Rewritten *bool
	Selected  *bool
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
}

// PublishedArticle is the projection served for rewritten articles
type PublishedArticle struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Published     time.Time `json:"published"`
	Category      string    `json:"category"`
	RewrittenText string    `json:"rewritten_text"`
	ImageURL      string    `json:"image_url,omitempty"`
}
