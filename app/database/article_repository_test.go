package database

import (
	"strings"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*DB, *ArticleRepositoryImpl) {
	t.Helper()

	db, err := NewConnection(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db, NewArticleRepository(db)
}

func sampleArticle(hash string) Article {
	return Article{
		Title:       "Storm hits coast",
		Content:     "A powerful storm struck the coastal region overnight.",
		Summary:     "Storm strikes coast.",
		Sentiment:   "negative",
		Confidence:  0.9,
		Category:    "general",
		Country:     "us",
		Language:    "English",
		Genre:       "Environment",
		Keywords:    []string{"storm", "coast"},
		WordCount:   8,
		ContentHash: hash,
		CreatedAt:   time.Now(),
	}
}

func TestUpsertArticle_InsertAndReplace(t *testing.T) {
	_, repo := setupTestDB(t)

	first := sampleArticle("hash-1")
	id1, err := repo.UpsertArticle(first)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id1 == "" {
		t.Fatal("expected generated ID")
	}

	// Same content hash replaces the previous analysis.
	second := sampleArticle("hash-1")
	second.Sentiment = "positive"
	if _, err := repo.UpsertArticle(second); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	count, err := repo.GetArticleCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 article after replace, got %d", count)
	}

	history, err := repo.GetHistory(10)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if history[0].Sentiment != "positive" {
		t.Errorf("expected replaced sentiment, got %q", history[0].Sentiment)
	}
}

func TestGetHistory_TruncatesAndOrders(t *testing.T) {
	_, repo := setupTestDB(t)

	old := sampleArticle("hash-old")
	old.Title = strings.Repeat("a", 150)
	old.Content = strings.Repeat("b", 600)
	old.CreatedAt = time.Now().Add(-time.Hour)
	if _, err := repo.UpsertArticle(old); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	recent := sampleArticle("hash-new")
	recent.Title = "Recent headline"
	if _, err := repo.UpsertArticle(recent); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	history, err := repo.GetHistory(10)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(history))
	}
	if history[0].Title != "Recent headline" {
		t.Errorf("expected newest first, got %q", history[0].Title)
	}
	if len(history[1].Title) != 100 {
		t.Errorf("expected title truncated to 100, got %d", len(history[1].Title))
	}
	if len(history[1].Content) != 500 {
		t.Errorf("expected content truncated to 500, got %d", len(history[1].Content))
	}
	if len(history[0].Keywords) != 2 {
		t.Errorf("expected keywords decoded, got %v", history[0].Keywords)
	}
}

func TestGetSentimentRecords_SinceAndLiveOnly(t *testing.T) {
	_, repo := setupTestDB(t)

	old := sampleArticle("hash-old")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	if _, err := repo.UpsertArticle(old); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	live := sampleArticle("hash-live")
	live.IsLiveAnalysis = true
	if _, err := repo.UpsertArticle(live); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	manual := sampleArticle("hash-manual")
	if _, err := repo.UpsertArticle(manual); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	since := time.Now().Add(-24 * time.Hour)

	all, err := repo.GetSentimentRecords(since, false)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 recent records, got %d", len(all))
	}

	liveOnly, err := repo.GetSentimentRecords(since, true)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(liveOnly) != 1 {
		t.Errorf("expected 1 live record, got %d", len(liveOnly))
	}
}

func TestClearHistoryAndLiveAnalyses(t *testing.T) {
	_, repo := setupTestDB(t)

	live := sampleArticle("hash-live")
	live.IsLiveAnalysis = true
	if _, err := repo.UpsertArticle(live); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	manual := sampleArticle("hash-manual")
	if _, err := repo.UpsertArticle(manual); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	deleted, err := repo.ClearLiveAnalyses()
	if err != nil {
		t.Fatalf("clear live failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 live analysis deleted, got %d", deleted)
	}

	deleted, err = repo.ClearHistory()
	if err != nil {
		t.Fatalf("clear history failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 remaining article deleted, got %d", deleted)
	}

	count, err := repo.GetArticleCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d", count)
	}
}
