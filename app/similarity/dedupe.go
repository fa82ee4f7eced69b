package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DuplicateThreshold is the sequence similarity ratio above which two
// titles are treated as the same story.
const DuplicateThreshold = 0.8

// TitleRatio computes the sequence similarity of two titles, compared
// lowercase and trimmed.
func TitleRatio(a, b string) float64 {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return 0
	}
	if left == right {
		return 1
	}
	matcher := difflib.NewMatcher(strings.Split(left, ""), strings.Split(right, ""))
	return matcher.Ratio()
}

// IsDuplicate reports whether two titles are near-identical.
func IsDuplicate(a, b string) bool {
	return TitleRatio(a, b) >= DuplicateThreshold
}

// DedupeIndexes walks titles in order and returns the indexes of those that
// are not near-duplicates of an earlier title. The first occurrence of a
// story always survives. Empty titles are kept untouched since there is
// nothing to compare.
func DedupeIndexes(titles []string) []int {
	kept := make([]int, 0, len(titles))
	seen := make([]string, 0, len(titles))

	for i, title := range titles {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			kept = append(kept, i)
			continue
		}

		duplicate := false
		for _, prev := range seen {
			if IsDuplicate(trimmed, prev) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, i)
		seen = append(seen, trimmed)
	}
	return kept
}

// DedupeTitles filters a title list in place of DedupeIndexes when only the
// surviving strings are needed.
func DedupeTitles(titles []string) []string {
	indexes := DedupeIndexes(titles)
	out := make([]string, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, titles[i])
	}
	return out
}
