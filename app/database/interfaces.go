package database

import (
	"time"
)

type ArticleRepository interface {
	UpsertArticle(article Article) (string, error)
	GetHistory(limit int) ([]Article, error)
	GetRecentContents(limit int) ([]Article, error)
	GetSentimentRecords(since time.Time, liveOnly bool) ([]SentimentObservation, error)
	GetArticleCount() (int, error)

	ClearHistory() (int64, error)
	ClearLiveAnalyses() (int64, error)
}
