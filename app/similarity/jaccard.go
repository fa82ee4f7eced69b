package similarity

import (
	"sort"
	"strings"

	"github.com/newspulse/newspulse/app/textproc"
)

// SimilarThreshold is the minimum Jaccard similarity for two articles to be
// considered related.
const SimilarThreshold = 0.2

// MaxSimilar caps the number of related articles returned per query.
const MaxSimilar = 5

// Match is one related article with its similarity to the query.
type Match struct {
	Index      int     `json:"index"`
	Similarity float64 `json:"similarity"`
}

// Jaccard computes the Jaccard similarity of two texts over their cleaned
// word sets. Two empty sets are not similar.
func Jaccard(a, b string) float64 {
	setA := textproc.TokenSet(textproc.Clean(a))
	setB := textproc.TokenSet(textproc.Clean(b))
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if _, ok := setB[word]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// FindSimilar ranks candidate texts by Jaccard similarity against the query
// and returns the closest matches above the threshold, strongest first.
func FindSimilar(query string, candidates []string) []Match {
	querySet := textproc.TokenSet(textproc.Clean(query))
	if len(querySet) == 0 {
		return nil
	}

	var matches []Match
	for i, candidate := range candidates {
		score := jaccardSets(querySet, textproc.TokenSet(textproc.Clean(candidate)))
		if score > SimilarThreshold {
			matches = append(matches, Match{Index: i, Similarity: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })
	if len(matches) > MaxSimilar {
		matches = matches[:MaxSimilar]
	}
	return matches
}

func jaccardSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for word := range a {
		if _, ok := b[word]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Snippet returns the leading part of a text for compact related-article
// payloads.
func Snippet(text string, max int) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max]
}
