package features

import (
	"regexp"
	"strings"
	"unicode"
)

var clickbaitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(you won't believe|shocking|amazing|incredible)\b`),
	regexp.MustCompile(`\b(this will|you need to|you have to|you must)\b`),
	regexp.MustCompile(`\b\d+\s+(things|ways|reasons|secrets)\b`),
	regexp.MustCompile(`\b(what happens next|wait until you see)\b`),
	regexp.MustCompile(`\?{2,}|!{2,}`),
	regexp.MustCompile(`\b(before and after|then and now)\b`),
	regexp.MustCompile(`\b(doctors hate|experts don't want)\b`),
}

// ClickbaitScore rates a title on [0,1] by counting hits across the fixed
// suspicious-title patterns, plus one extra hit when more than 30% of the
// title's characters are uppercase. An empty title scores 0.
func ClickbaitScore(title string) float64 {
	if title == "" {
		return 0
	}

	lower := strings.ToLower(title)

	hits := 0
	for _, p := range clickbaitPatterns {
		if p.MatchString(lower) {
			hits++
		}
	}

	if uppercaseRatio(title) > 0.3 {
		hits++
	}

	score := float64(hits) / float64(len(clickbaitPatterns)+1)
	if score > 1 {
		return 1
	}
	return score
}

func uppercaseRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len(runes))
}
