package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	historyTitleLimit   = 100
	historyContentLimit = 500
)

var _ ArticleRepository = (*ArticleRepositoryImpl)(nil)

// ArticleRepositoryImpl handles database operations for analyzed articles
type ArticleRepositoryImpl struct {
	db *DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *DB) *ArticleRepositoryImpl {
	return &ArticleRepositoryImpl{db: db}
}

// UpsertArticle inserts an analysis result, replacing the previous analysis
// of the same content. Returns the database ID of the stored row.
func (r *ArticleRepositoryImpl) UpsertArticle(article Article) (string, error) {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	keywords, err := json.Marshal(article.Keywords)
	if err != nil {
		return "", fmt.Errorf("failed to encode keywords: %w", err)
	}

	var dbID string
	err = r.db.QueryRow(`
		INSERT INTO articles (
			id, title, content, summary, sentiment, confidence,
			category, country, language, genre, writing_style,
			clickbait_score, readability_score, keywords, word_count,
			content_hash, source_url, source_name, published_at,
			is_live_analysis, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			summary = excluded.summary,
			sentiment = excluded.sentiment,
			confidence = excluded.confidence,
			category = excluded.category,
			country = excluded.country,
			language = excluded.language,
			genre = excluded.genre,
			writing_style = excluded.writing_style,
			clickbait_score = excluded.clickbait_score,
			readability_score = excluded.readability_score,
			keywords = excluded.keywords,
			word_count = excluded.word_count,
			source_url = excluded.source_url,
			source_name = excluded.source_name,
			published_at = excluded.published_at,
			is_live_analysis = excluded.is_live_analysis,
			created_at = excluded.created_at
		RETURNING id
	`, article.ID, article.Title, article.Content, article.Summary,
		article.Sentiment, article.Confidence, article.Category,
		article.Country, article.Language, article.Genre,
		article.WritingStyle, article.ClickbaitScore, article.Readability,
		string(keywords), article.WordCount, article.ContentHash,
		article.SourceURL, article.SourceName, article.PublishedAt,
		article.IsLiveAnalysis, timeOrNow(article.CreatedAt)).Scan(&dbID)

	if err != nil {
		return "", fmt.Errorf("failed to upsert article: %w", err)
	}

	return dbID, nil
}

// GetHistory returns the most recent analyses, newest first. Titles and
// contents come back truncated for compact history payloads.
func (r *ArticleRepositoryImpl) GetHistory(limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT id, title, content, summary, sentiment, confidence,
			category, country, language, genre, writing_style,
			clickbait_score, readability_score, keywords, word_count,
			content_hash, source_url, source_name, published_at,
			is_live_analysis, created_at
		FROM articles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		articles[i].Title = truncate(articles[i].Title, historyTitleLimit)
		articles[i].Content = truncate(articles[i].Content, historyContentLimit)
	}
	return articles, nil
}

// GetRecentContents returns recent articles untruncated, for similarity
// lookups against the stored corpus.
func (r *ArticleRepositoryImpl) GetRecentContents(limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(`
		SELECT id, title, content, summary, sentiment, confidence,
			category, country, language, genre, writing_style,
			clickbait_score, readability_score, keywords, word_count,
			content_hash, source_url, source_name, published_at,
			is_live_analysis, created_at
		FROM articles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetSentimentRecords returns the sentiment observations created since the
// given time, optionally restricted to live (scheduled) analyses.
func (r *ArticleRepositoryImpl) GetSentimentRecords(since time.Time, liveOnly bool) ([]SentimentObservation, error) {
	query := `
		SELECT sentiment, confidence, created_at
		FROM articles
		WHERE created_at >= ?
	`
	args := []interface{}{since}
	if liveOnly {
		query += " AND is_live_analysis = 1"
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment records: %w", err)
	}
	defer rows.Close()

	var records []SentimentObservation
	for rows.Next() {
		var record SentimentObservation
		if err := rows.Scan(&record.Sentiment, &record.Confidence, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetArticleCount returns the total number of stored analyses
func (r *ArticleRepositoryImpl) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// ClearHistory removes all stored analyses and returns the number deleted
func (r *ArticleRepositoryImpl) ClearHistory() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM articles`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return result.RowsAffected()
}

// ClearLiveAnalyses removes only the analyses produced by the background
// scheduler, leaving user-submitted ones in place
func (r *ArticleRepositoryImpl) ClearLiveAnalyses() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM articles WHERE is_live_analysis = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear live analyses: %w", err)
	}
	return result.RowsAffected()
}

func scanArticles(rows *sql.Rows) ([]Article, error) {
	var articles []Article
	for rows.Next() {
		var article Article
		var keywords string
		var publishedAt sql.NullTime

		err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.Summary, &article.Sentiment, &article.Confidence,
			&article.Category, &article.Country, &article.Language,
			&article.Genre, &article.WritingStyle, &article.ClickbaitScore,
			&article.Readability, &keywords, &article.WordCount,
			&article.ContentHash, &article.SourceURL, &article.SourceName,
			&publishedAt, &article.IsLiveAnalysis, &article.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}

		if keywords != "" {
			if err := json.Unmarshal([]byte(keywords), &article.Keywords); err != nil {
				return nil, fmt.Errorf("failed to decode keywords: %w", err)
			}
		}
		if publishedAt.Valid {
			article.PublishedAt = &publishedAt.Time
		}

		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func timeOrNow(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now()
	}
	return ts
}
