package analyzer

import (
	"time"

	"github.com/newspulse/newspulse/app/features"
	"github.com/newspulse/newspulse/app/summary"
)

// SimilarArticle is a read-only projection of a historical analysis ranked
// by similarity to the current content
type SimilarArticle struct {
	Title      string  `json:"title"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Similarity float64 `json:"similarity"`
}

// AnalysisResult is the complete output of one article analysis
type AnalysisResult struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Content         string             `json:"content"`
	Sentiment       string             `json:"sentiment"`
	Confidence      float64            `json:"confidence"`
	Summary         string             `json:"summary"`
	KeyDetails      summary.KeyDetails `json:"key_details"`
	Language        string             `json:"language"`
	WritingStyle    string             `json:"writing_style"`
	ClickbaitScore  float64            `json:"clickbait_score"`
	Readability     float64            `json:"readability_score"`
	Genre           string             `json:"genre"`
	Keywords        []features.Keyword `json:"keywords"`
	WordCount       int                `json:"word_count"`
	ContentHash     string             `json:"content_hash"`
	SimilarArticles []SimilarArticle   `json:"similar_articles"`
	AnalyzedAt      time.Time          `json:"analyzed_at"`
}
