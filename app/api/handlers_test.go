package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/newspulse/newspulse/app/analyzer"
	"github.com/newspulse/newspulse/app/database"
	"github.com/newspulse/newspulse/app/fetcher"
	"github.com/newspulse/newspulse/app/tasks"
)

type stubAnalyzer struct {
	result *analyzer.AnalysisResult
	err    error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, title, content string) (*analyzer.AnalysisResult, error) {
	return s.result, s.err
}

type stubRepo struct {
	articles     []database.Article
	observations []database.SentimentObservation
	cleared      bool
	liveCleared  bool
}

func (s *stubRepo) UpsertArticle(article database.Article) (string, error) {
	s.articles = append(s.articles, article)
	return article.ID, nil
}

func (s *stubRepo) GetHistory(limit int) ([]database.Article, error) {
	return s.articles, nil
}

func (s *stubRepo) GetRecentContents(limit int) ([]database.Article, error) {
	return s.articles, nil
}

func (s *stubRepo) GetSentimentRecords(since time.Time, liveOnly bool) ([]database.SentimentObservation, error) {
	return s.observations, nil
}

func (s *stubRepo) GetArticleCount() (int, error) {
	return len(s.articles), nil
}

func (s *stubRepo) ClearHistory() (int64, error) {
	s.cleared = true
	return int64(len(s.articles)), nil
}

func (s *stubRepo) ClearLiveAnalyses() (int64, error) {
	s.liveCleared = true
	return 1, nil
}

type stubFetcher struct {
	items []fetcher.Item
}

func (s *stubFetcher) FetchCategory(ctx context.Context, category, country string) ([]fetcher.Item, error) {
	return s.items, nil
}

func (s *stubFetcher) Categories() []string {
	return []string{"technology", "general"}
}

type stubScheduler struct{}

func (s *stubScheduler) Start() {}
func (s *stubScheduler) Stop()  {}

func (s *stubScheduler) EnqueueTask(tasks.TaskInterface) error { return nil }

func testServer(repo *stubRepo, apiKey string) http.Handler {
	handler := NewHandler(
		&stubAnalyzer{result: &analyzer.AnalysisResult{
			ID:         "test-id",
			Sentiment:  "negative",
			Confidence: 0.9,
			Language:   "English",
		}},
		repo,
		&stubFetcher{items: []fetcher.Item{{Title: "Storm hits coast"}}},
		nil,
		&stubScheduler{},
	)
	return NewServer(handler, apiKey)
}

func TestPredict(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"title":"Storm hits coast"}`))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["sentiment"] != "negative" {
		t.Errorf("unexpected sentiment: %v", body)
	}
}

func TestPredictRejectsEmptyInput(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"title":"  "}`))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeArticlePersists(t *testing.T) {
	repo := &stubRepo{}
	server := testServer(repo, "")

	req := httptest.NewRequest("POST", "/analyze-article", strings.NewReader(`{"title":"Storm hits coast","content":"A storm struck."}`))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.articles) != 1 {
		t.Errorf("expected article persisted, got %d", len(repo.articles))
	}
	if repo.articles[0].IsLiveAnalysis {
		t.Error("manual analysis must not be flagged live")
	}
}

func TestHistory(t *testing.T) {
	repo := &stubRepo{articles: []database.Article{{ID: "a1", Title: "Storm hits coast", Sentiment: "negative"}}}
	server := testServer(repo, "")

	req := httptest.NewRequest("GET", "/history", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["total"].(float64) != 1 {
		t.Errorf("unexpected total: %v", body["total"])
	}
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("GET", "/history?limit=abc", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestClearHistoryRequiresAPIKey(t *testing.T) {
	repo := &stubRepo{}
	server := testServer(repo, "secret")

	req := httptest.NewRequest("POST", "/clear-history", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}
	if repo.cleared {
		t.Error("history must not be cleared without authentication")
	}

	req = httptest.NewRequest("POST", "/clear-history", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", w.Code)
	}
	if !repo.cleared {
		t.Error("expected history cleared")
	}
}

func TestClearLiveData(t *testing.T) {
	repo := &stubRepo{}
	server := testServer(repo, "")

	req := httptest.NewRequest("POST", "/clear-live-data", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !repo.liveCleared {
		t.Error("expected live analyses cleared")
	}
}

func TestSentimentDistribution(t *testing.T) {
	repo := &stubRepo{observations: []database.SentimentObservation{
		{Sentiment: "positive", Confidence: 0.9, CreatedAt: time.Now()},
	}}
	server := testServer(repo, "")

	req := httptest.NewRequest("GET", "/sentiment-distribution?days=3", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	timeline, ok := body["timeline"].([]interface{})
	if !ok || len(timeline) != 3 {
		t.Errorf("expected 3 buckets for 3-day span, got %v", body["timeline"])
	}
}

func TestSentimentDistributionRejectsBadDays(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("GET", "/sentiment-distribution?days=-1", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTranslateUnavailableWithoutTranslator(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("POST", "/translate-text", strings.NewReader(`{"text":"hej","target_language":"en"}`))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "categories") {
		t.Errorf("expected category count in health payload: %s", w.Body.String())
	}
}

func TestTrendingNews(t *testing.T) {
	server := testServer(&stubRepo{}, "")

	req := httptest.NewRequest("GET", "/trending-news?category=technology", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["total"].(float64) != 1 {
		t.Errorf("unexpected total: %v", body["total"])
	}
}
