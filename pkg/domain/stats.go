package domain

import "time"

// Stats aggregates collection and rewrite statistics for the dashboard
type Stats struct {
	TotalArticles    int             `json:"total_articles"`
	RewrittenCount   int             `json:"rewritten_count"`
	RewrittenPercent float64         `json:"rewritten_percent"`
	TotalSources     int             `json:"total_sources"`
	ActiveSources    int             `json:"active_sources"`
	ByCategory       []CategoryCount `json:"by_category"`
	ByDay            []DayCount      `json:"by_day"`
	TopSources       []SourceCount   `json:"top_sources"`
	Recent           []RecentArticle `json:"recent"`
}

// CategoryCount holds per-category article counts
type CategoryCount struct {
	Category  string `json:"category" db:"category"`
	Total     int    `json:"total" db:"total"`
	Rewritten int    `json:"rewritten" db:"rewritten"`
}

// DayCount holds per-day collected article counts
type DayCount struct {
	Day   string `json:"day" db:"day"` // YYYY-MM-DD
	Total int    `json:"total" db:"total"`
}

// SourceCount holds per-source article counts
type SourceCount struct {
	SourceURL string `json:"source_url" db:"source_url"`
	Total     int    `json:"total" db:"total"`
}

// RecentArticle is a short projection of a recently collected article
type RecentArticle struct {
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"category" db:"category"`
	CollectedAt time.Time `json:"collected_at" db:"collected_at"`
}
