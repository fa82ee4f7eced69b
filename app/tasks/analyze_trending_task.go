package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newspulse/newspulse/app/analyzer"
	"github.com/newspulse/newspulse/app/database"
	"github.com/newspulse/newspulse/app/fetcher"
)

// articlesPerCategory caps how many articles one scheduled run analyzes per
// category
const articlesPerCategory = 3

type AnalyzeTrendingTask struct {
	Task
	country     string
	fetch       *fetcher.Fetcher
	analyze     *analyzer.Analyzer
	articleRepo database.ArticleRepository
}

func NewAnalyzeTrendingTask(category, country string, fetch *fetcher.Fetcher,
	analyze *analyzer.Analyzer, articleRepo database.ArticleRepository) *AnalyzeTrendingTask {
	return &AnalyzeTrendingTask{
		Task:        NewTask(TaskTypeAnalyzeTrending, category),
		country:     country,
		fetch:       fetch,
		analyze:     analyze,
		articleRepo: articleRepo,
	}
}

// Execute fetches the category's current headlines and persists analyses
// for the first few, flagged as live so they feed the sentiment charts.
func (t *AnalyzeTrendingTask) Execute(ctx context.Context) error {
	items, err := t.fetch.FetchCategory(ctx, t.Category, t.country)
	if err != nil {
		return fmt.Errorf("failed to fetch category %s: %w", t.Category, err)
	}
	if len(items) == 0 {
		slog.Debug("No articles fetched", "category", t.Category, "country", t.country)
		return nil
	}

	if len(items) > articlesPerCategory {
		items = items[:articlesPerCategory]
	}

	analyzed := 0
	for _, item := range items {
		content := item.Content
		if content == "" {
			content = item.Description
		}

		result, err := t.analyze.Analyze(ctx, item.Title, content)
		if err != nil {
			slog.Warn("Article analysis failed", "category", t.Category, "title", item.Title, "error", err)
			continue
		}

		article := result.ToArticle(t.Category, item.Country, item.Link, item.Source, true)
		if item.PublishedAt != nil {
			article.PublishedAt = item.PublishedAt
		}

		if _, err := t.articleRepo.UpsertArticle(article); err != nil {
			slog.Warn("Failed to store analysis", "category", t.Category, "title", item.Title, "error", err)
			continue
		}
		analyzed++
	}

	slog.Debug("Trending analysis completed", "category", t.Category, "analyzed", analyzed, "duration", t.GetDuration().String())
	return nil
}
