package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newspulse/newspulse/app/database"
	"github.com/newspulse/newspulse/app/features"
	"github.com/newspulse/newspulse/app/similarity"
	"github.com/newspulse/newspulse/app/summary"
)

const (
	storedContentLimit = 1000
	similarCorpusLimit = 100
)

var (
	ErrNoClassifier = errors.New("no classifier configured")
	ErrEmptyInput   = errors.New("title or content required")
)

// Options tune the analysis outputs
type Options struct {
	MaxSummarySentences int
	MaxKeywords         int
}

// Analyzer composes the text pipeline with the external classifier,
// translator and history store
type Analyzer struct {
	classifier Classifier
	translator Translator
	history    HistoryStore
	opts       Options
}

func New(classifier Classifier, translator Translator, history HistoryStore, opts Options) *Analyzer {
	if opts.MaxSummarySentences <= 0 {
		opts.MaxSummarySentences = 3
	}
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = 8
	}
	return &Analyzer{
		classifier: classifier,
		translator: translator,
		history:    history,
		opts:       opts,
	}
}

// Analyze runs the full pipeline over one article. Sparse input degrades to
// defaults; a missing classifier is the one hard failure besides empty
// input.
func (a *Analyzer) Analyze(ctx context.Context, title, content string) (*AnalysisResult, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}
	if a.classifier == nil {
		return nil, ErrNoClassifier
	}

	result := &AnalysisResult{
		ID:          uuid.New().String(),
		Title:       title,
		ContentHash: ContentHash(title, content),
		Language:    "English",
		AnalyzedAt:  time.Now(),
	}

	analyzedTitle, analyzedContent := a.translateIfNeeded(ctx, title, content, result)

	combined := strings.TrimSpace(analyzedTitle + " " + analyzedContent)

	label, confidence, err := a.classifier.Predict(combined)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	result.Sentiment = label
	result.Confidence = confidence

	result.WritingStyle = features.DetectWritingStyle(analyzedContent)
	result.ClickbaitScore = features.ClickbaitScore(analyzedTitle)
	result.Readability = features.Readability(analyzedContent)
	result.Genre = features.DetectGenre(analyzedTitle, analyzedContent)
	result.Keywords = features.ExtractKeywords(combined, features.KeywordOptions{Max: a.opts.MaxKeywords})

	result.Summary = summary.Summarize(analyzedContent, a.opts.MaxSummarySentences)
	result.KeyDetails = summary.ExtractKeyDetails(analyzedContent)

	result.WordCount = len(strings.Fields(analyzedContent))
	result.Content = truncateContent(analyzedContent)

	result.SimilarArticles = a.findSimilar(analyzedContent)

	return result, nil
}

// translateIfNeeded detects the input language and translates non-English
// text to English for the downstream heuristics. On any translation
// failure the original text is analyzed as-is.
func (a *Analyzer) translateIfNeeded(ctx context.Context, title, content string, result *AnalysisResult) (string, string) {
	if a.translator == nil || !a.translator.Enabled() {
		return title, content
	}

	sample := strings.TrimSpace(title + " " + content)
	detected, err := a.translator.Detect(ctx, sample)
	if err != nil {
		slog.Warn("Language detection failed, assuming English", "error", err)
		return title, content
	}

	result.Language = DisplayLanguage(detected)
	if detected == "en" || detected == "" {
		return title, content
	}

	translatedTitle, err := a.translator.Translate(ctx, title, detected, "en")
	if err != nil {
		slog.Warn("Title translation failed, using original", "language", detected, "error", err)
		return title, content
	}
	translatedContent, err := a.translator.Translate(ctx, content, detected, "en")
	if err != nil {
		slog.Warn("Content translation failed, using original", "language", detected, "error", err)
		return title, content
	}

	return translatedTitle, translatedContent
}

func (a *Analyzer) findSimilar(content string) []SimilarArticle {
	if a.history == nil || strings.TrimSpace(content) == "" {
		return nil
	}

	articles, err := a.history.GetRecentContents(similarCorpusLimit)
	if err != nil {
		slog.Warn("Similar article lookup failed", "error", err)
		return nil
	}
	if len(articles) == 0 {
		return nil
	}

	candidates := make([]string, len(articles))
	for i, article := range articles {
		candidates[i] = article.Content
	}

	matches := similarity.FindSimilar(content, candidates)
	similar := make([]SimilarArticle, 0, len(matches))
	for _, match := range matches {
		article := articles[match.Index]
		similar = append(similar, SimilarArticle{
			Title:      article.Title,
			Sentiment:  article.Sentiment,
			Confidence: article.Confidence,
			Similarity: round2(match.Similarity),
		})
	}
	return similar
}

// ContentHash derives the storage dedup key from the raw title and content
func ContentHash(title, content string) string {
	digest := sha256.Sum256([]byte(title + content))
	return hex.EncodeToString(digest[:])
}

// ToArticle maps an analysis result onto the persisted record shape
func (r *AnalysisResult) ToArticle(category, country, sourceURL, sourceName string, live bool) database.Article {
	keywords := make([]string, 0, len(r.Keywords))
	for _, keyword := range r.Keywords {
		keywords = append(keywords, keyword.Word)
	}

	return database.Article{
		ID:             r.ID,
		Title:          r.Title,
		Content:        r.Content,
		Summary:        r.Summary,
		Sentiment:      r.Sentiment,
		Confidence:     r.Confidence,
		Category:       category,
		Country:        country,
		Language:       r.Language,
		Genre:          r.Genre,
		WritingStyle:   r.WritingStyle,
		ClickbaitScore: r.ClickbaitScore,
		Readability:    r.Readability,
		Keywords:       keywords,
		WordCount:      r.WordCount,
		ContentHash:    r.ContentHash,
		SourceURL:      sourceURL,
		SourceName:     sourceName,
		IsLiveAnalysis: live,
		CreatedAt:      r.AnalyzedAt,
	}
}

func truncateContent(content string) string {
	if len(content) <= storedContentLimit {
		return content
	}
	return content[:storedContentLimit]
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
