package fetcher

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the freshness window for fetched category responses
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	items     []Item
	expiresAt time.Time
}

// ResponseCache holds fetched items per (category, country) for a fixed
// freshness window
type ResponseCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheEntry
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{
		ttl:   ttl,
		items: make(map[string]cacheEntry),
	}
}

func cacheKey(category, country string) string {
	return category + "|" + country
}

func (c *ResponseCache) Get(category, country string) ([]Item, bool) {
	c.mu.RLock()
	entry, ok := c.items[cacheKey(category, country)]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, cacheKey(category, country))
		c.mu.Unlock()
		return nil, false
	}
	return entry.items, true
}

func (c *ResponseCache) Set(category, country string, items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[cacheKey(category, country)] = cacheEntry{
		items:     items,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear drops every cached response
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheEntry)
}
