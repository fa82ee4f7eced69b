package features

import (
	"sort"
	"strings"

	"github.com/newspulse/newspulse/app/textproc"
)

// Keyword is a surfaced keyword with its occurrence count.
type Keyword struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// KeywordOptions tunes keyword extraction. Zero values fall back to the
// defaults: at most 8 keywords, backfilling with singleton words whenever
// fewer than 5 keywords occur at least twice.
type KeywordOptions struct {
	Max       int
	MinStrong int
}

const (
	defaultMaxKeywords = 8
	defaultMinStrong   = 5
)

// ExtractKeywords returns the most frequent meaningful words of text in
// descending frequency order. Tokens must be longer than 3 characters and
// outside the stopword set. Words occurring at least twice are preferred;
// when fewer than MinStrong qualify, the next most frequent singletons fill
// the list. Text under 20 characters yields no keywords.
func ExtractKeywords(text string, opts KeywordOptions) []Keyword {
	if opts.Max <= 0 {
		opts.Max = defaultMaxKeywords
	}
	if opts.MinStrong <= 0 {
		opts.MinStrong = defaultMinStrong
	}

	if len(strings.TrimSpace(text)) < 20 {
		return nil
	}

	tokens := textproc.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	freq := make(map[string]int)
	var order []string
	for _, token := range tokens {
		if len(token) <= 3 || textproc.IsStopword(token) {
			continue
		}
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	if len(order) == 0 {
		return nil
	}

	// Most frequent first; first occurrence breaks ties, keeping the
	// ordering stable across runs.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	pool := order
	if len(pool) > opts.Max*2 {
		pool = pool[:opts.Max*2]
	}

	keywords := make([]Keyword, 0, opts.Max)
	seen := make(map[string]struct{})

	for _, word := range pool {
		if len(keywords) >= opts.Max {
			break
		}
		if freq[word] < 2 {
			continue
		}
		keywords = append(keywords, Keyword{Word: capitalize(word), Frequency: freq[word]})
		seen[word] = struct{}{}
	}

	// Backfill with singletons when high-frequency words are scarce.
	if len(keywords) < opts.MinStrong {
		limit := opts.Max
		if limit > len(pool) {
			limit = len(pool)
		}
		for _, word := range pool[:limit] {
			if len(keywords) >= opts.Max {
				break
			}
			if _, ok := seen[word]; ok {
				continue
			}
			keywords = append(keywords, Keyword{Word: capitalize(word), Frequency: freq[word]})
			seen[word] = struct{}{}
		}
	}

	return keywords
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
