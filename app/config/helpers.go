package config

import (
	"strings"
	"time"
)

// GetTimeout returns the timeout as time.Duration
func (s *SourceSettings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(s.Timeout) * time.Second
}

// CategoryKeywords returns the keywords configured for a category name,
// case-insensitive. Nil when the category is unknown.
func (c *SourceConfig) CategoryKeywords(name string) []string {
	for _, category := range c.Categories {
		if strings.EqualFold(category.Name, name) {
			return category.Keywords
		}
	}
	return nil
}

// MatchesCategory reports whether the text mentions any of the category's
// keywords. A category with no keywords matches everything.
func (c *Category) MatchesCategory(text string) bool {
	if len(c.Keywords) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, keyword := range c.Keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
