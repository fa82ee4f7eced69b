package fetcher

import "time"

// Item is one fetched news article candidate
type Item struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Link        string     `json:"url"`
	Source      string     `json:"source"`
	Category    string     `json:"category"`
	Country     string     `json:"country"`
	PublishedAt *time.Time `json:"published_at"`
}
