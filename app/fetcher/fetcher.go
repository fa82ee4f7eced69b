package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/newspulse/newspulse/app/config"
	"github.com/newspulse/newspulse/app/similarity"
)

const minTitleLength = 10

// Fetcher pulls articles from the configured RSS sources, filters them by
// category keywords and drops near-duplicate headlines. Responses are
// cached per (category, country).
type Fetcher struct {
	sources    map[string]*config.SourceConfig
	parser     *gofeed.Parser
	cache      *ResponseCache
	httpClient *http.Client
	userAgent  string
	extractor  *ContentExtractor
}

func New(sources map[string]*config.SourceConfig, userAgent string) *Fetcher {
	return &Fetcher{
		sources: sources,
		parser:  gofeed.NewParser(),
		cache:   NewResponseCache(DefaultCacheTTL),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: userAgent,
		extractor: NewContentExtractor(),
	}
}

// Categories returns every category name configured across the sources
func (f *Fetcher) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, source := range f.sources {
		for _, category := range source.Categories {
			key := strings.ToLower(category.Name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			categories = append(categories, category.Name)
		}
	}
	return categories
}

// FetchCategory returns filtered, deduplicated items for a category and
// country. A cached response within the freshness window is returned
// without hitting the sources.
func (f *Fetcher) FetchCategory(ctx context.Context, category, country string) ([]Item, error) {
	if cached, ok := f.cache.Get(category, country); ok {
		slog.Debug("Returning cached articles", "category", category, "country", country, "count", len(cached))
		return cached, nil
	}

	var items []Item
	for _, source := range f.sources {
		if !source.Settings.Enabled {
			continue
		}
		if country != "" && !strings.EqualFold(source.Source.Country, country) {
			continue
		}

		sourceItems, err := f.fetchSource(ctx, source, category)
		if err != nil {
			slog.Warn("Source fetch failed", "source", source.Source.Name, "error", err)
			continue
		}
		items = append(items, sourceItems...)
	}

	items = dedupeItems(items)

	f.cache.Set(category, country, items)
	return items, nil
}

// ClearCache drops all cached category responses
func (f *Fetcher) ClearCache() {
	f.cache.Clear()
}

func (f *Fetcher) fetchSource(ctx context.Context, source *config.SourceConfig, category string) ([]Item, error) {
	feed, err := f.fetchFeed(ctx, source)
	if err != nil {
		return nil, err
	}

	var matcher *config.Category
	for i := range source.Categories {
		if strings.EqualFold(source.Categories[i].Name, category) {
			matcher = &source.Categories[i]
			break
		}
	}

	maxArticles := source.Settings.MaxArticles
	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if len(strings.TrimSpace(entry.Title)) < minTitleLength {
			continue
		}
		if matcher != nil && !matcher.MatchesCategory(entry.Title+" "+entry.Description) {
			continue
		}

		item := Item{
			Title:       strings.TrimSpace(entry.Title),
			Description: strings.TrimSpace(entry.Description),
			Link:        entry.Link,
			Source:      source.Source.Name,
			Category:    category,
			Country:     source.Source.Country,
			PublishedAt: entry.PublishedParsed,
		}

		if source.Settings.ExtractContent && entry.Link != "" {
			if content, err := f.extractor.ExtractURL(ctx, f.httpClient, entry.Link, f.userAgent); err == nil {
				item.Content = content
			} else {
				slog.Debug("Content extraction failed", "url", entry.Link, "error", err)
			}
		}

		items = append(items, item)
		if maxArticles > 0 && len(items) >= maxArticles {
			break
		}
	}

	return items, nil
}

func (f *Fetcher) fetchFeed(ctx context.Context, source *config.SourceConfig) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, source.Settings.GetTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.Source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	feed, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return feed, nil
}

// dedupeItems drops items whose titles are near-duplicates of an earlier
// item. First-seen survives.
func dedupeItems(items []Item) []Item {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}

	kept := similarity.DedupeIndexes(titles)
	out := make([]Item, 0, len(kept))
	for _, i := range kept {
		out = append(out, items[i])
	}
	return out
}
