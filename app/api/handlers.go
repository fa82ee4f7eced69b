package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newspulse/newspulse/app/database"
	"github.com/newspulse/newspulse/app/sentiment"
	"github.com/newspulse/newspulse/app/tasks"
)

const defaultHistoryLimit = 50

func NewHandler(analyze AnalyzerInterface, articleRepo database.ArticleRepository,
	fetch FetcherInterface, translator TranslatorInterface,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		analyze:     analyze,
		articleRepo: articleRepo,
		fetch:       fetch,
		translator:  translator,
		scheduler:   scheduler,
	}
}

// Predict classifies the sentiment of submitted text without running the
// full pipeline or persisting anything
func (h *Handler) Predict(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title or content required"})
		return
	}

	result, err := h.analyze.Analyze(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		slog.Error("Prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sentiment":  result.Sentiment,
		"confidence": result.Confidence,
		"language":   result.Language,
	})
}

// AnalyzeArticle runs the full analysis pipeline and persists the result
func (h *Handler) AnalyzeArticle(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title or content required"})
		return
	}

	result, err := h.analyze.Analyze(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		slog.Error("Article analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	article := result.ToArticle("", "", "", "manual", false)
	if _, err := h.articleRepo.UpsertArticle(article); err != nil {
		slog.Error("Failed to store analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store analysis"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory returns recent analyses, newest first
func (h *Handler) GetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	articles, err := h.articleRepo.GetHistory(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	history := make([]gin.H, 0, len(articles))
	for _, article := range articles {
		history = append(history, gin.H{
			"id":               article.ID,
			"title":            article.Title,
			"content":          article.Content,
			"summary":          article.Summary,
			"sentiment":        article.Sentiment,
			"confidence":       article.Confidence,
			"language":         article.Language,
			"genre":            article.Genre,
			"writing_style":    article.WritingStyle,
			"clickbait_score":  article.ClickbaitScore,
			"readability":      article.Readability,
			"keywords":         article.Keywords,
			"word_count":       article.WordCount,
			"is_live_analysis": article.IsLiveAnalysis,
			"created_at":       article.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// ClearHistory deletes all stored analyses
func (h *Handler) ClearHistory(c *gin.Context) {
	deleted, err := h.articleRepo.ClearHistory()
	if err != nil {
		slog.Error("Database error", "operation", "clear_history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("History cleared", "deleted", deleted)
	c.JSON(http.StatusOK, gin.H{
		"message": "History cleared",
		"deleted": deleted,
	})
}

// ClearLiveData deletes only scheduler-produced analyses, resetting the
// sentiment charts
func (h *Handler) ClearLiveData(c *gin.Context) {
	deleted, err := h.articleRepo.ClearLiveAnalyses()
	if err != nil {
		slog.Error("Database error", "operation", "clear_live_data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	slog.Info("Live analyses cleared", "deleted", deleted)
	c.JSON(http.StatusOK, gin.H{
		"message": "Live analysis data cleared",
		"deleted": deleted,
	})
}

// GetTrendingNews fetches and returns current articles for a category
func (h *Handler) GetTrendingNews(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	country := c.DefaultQuery("country", "")

	items, err := h.fetch.FetchCategory(c.Request.Context(), category, country)
	if err != nil {
		slog.Error("Trending news fetch failed", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"country":  country,
		"articles": items,
		"total":    len(items),
	})
}

// GetRSSNews is the raw feed variant of the trending endpoint, listing the
// configured categories alongside the articles
func (h *Handler) GetRSSNews(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	country := c.DefaultQuery("country", "")

	items, err := h.fetch.FetchCategory(c.Request.Context(), category, country)
	if err != nil {
		slog.Error("RSS news fetch failed", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"country":    country,
		"articles":   items,
		"total":      len(items),
		"categories": h.fetch.Categories(),
	})
}

// GetSentimentDistribution aggregates live analyses into the chart-ready
// gap-free timeline for the requested day span
func (h *Handler) GetSentimentDistribution(c *gin.Context) {
	days := 1.0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = parsed
	}

	now := time.Now()
	since := now.Add(-time.Duration(days * 24 * float64(time.Hour)))

	observations, err := h.articleRepo.GetSentimentRecords(since, true)
	if err != nil {
		slog.Error("Database error", "operation", "get_sentiment_records", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	records := make([]sentiment.Record, 0, len(observations))
	for _, obs := range observations {
		records = append(records, sentiment.Record{
			Sentiment:  obs.Sentiment,
			Confidence: obs.Confidence,
			Timestamp:  obs.CreatedAt,
		})
	}

	dist := sentiment.Aggregate(records, days, now)
	c.JSON(http.StatusOK, dist)
}

// TranslateText translates arbitrary text between languages
func (h *Handler) TranslateText(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and target_language required"})
		return
	}

	if h.translator == nil || !h.translator.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Translation is not configured"})
		return
	}

	source := req.SourceLanguage
	if source == "" {
		detected, err := h.translator.Detect(c.Request.Context(), req.Text)
		if err != nil {
			slog.Error("Language detection failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Language detection failed"})
			return
		}
		source = detected
	}

	translated, err := h.translator.Translate(c.Request.Context(), req.Text, source, req.TargetLanguage)
	if err != nil {
		slog.Error("Translation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Translation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translated_text": translated,
		"source_language": source,
		"target_language": req.TargetLanguage,
	})
}

// HealthCheck reports service liveness and basic counters
func (h *Handler) HealthCheck(c *gin.Context) {
	health := gin.H{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.articleRepo.GetArticleCount(); err == nil {
		health["articles"] = count
	}
	health["categories"] = len(h.fetch.Categories())

	c.JSON(http.StatusOK, health)
}
