package database

import (
	"time"
)

// Article represents one stored analysis result
type Article struct {
	ID             string
	Title          string
	Content        string
	Summary        string
	Sentiment      string
	Confidence     float64
	Category       string
	Country        string
	Language       string
	Genre          string
	WritingStyle   string
	ClickbaitScore float64
	Readability    float64
	Keywords       []string
	WordCount      int
	ContentHash    string
	SourceURL      string
	SourceName     string
	PublishedAt    *time.Time
	IsLiveAnalysis bool
	CreatedAt      time.Time
}

// SentimentObservation is the projection fed into the distribution
// aggregator
type SentimentObservation struct {
	Sentiment  string
	Confidence float64
	CreatedAt  time.Time
}
