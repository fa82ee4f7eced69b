package summary

import (
	"sort"
	"strings"

	"github.com/newspulse/newspulse/app/textproc"
)

// importanceFamily is a weighted keyword family used to score sentences.
// The table is ordered by weight, heaviest first.
type importanceFamily struct {
	weight   float64
	keywords []string
}

var importanceFamilies = []importanceFamily{
	{3.0, []string{
		"died", "death", "killed", "murdered", "suicide", "dead", "passed away",
		"announced", "declares", "declared", "launches", "launched", "releases", "released",
		"resigns", "resigned", "appointed", "elected", "fired", "dismissed",
		"arrested", "charged", "sentenced", "convicted", "acquitted",
		"breaks", "broke", "breaking", "emergency", "urgent", "alert",
		"first", "historic", "record", "milestone", "breakthrough",
	}},
	{2.5, []string{
		"earthquake", "flood", "fire", "disaster", "accident", "crash", "explosion",
		"attack", "bomb", "shooting", "terror", "violence", "war", "conflict",
		"pandemic", "outbreak", "crisis", "scandal", "controversy",
	}},
	{2.0, []string{
		"president", "prime minister", "minister", "ceo", "chairman", "director",
		"chief", "head", "leader", "commissioner", "judge", "justice",
		"governor", "mayor", "secretary", "spokesperson",
	}},
	{1.5, []string{
		"confirms", "confirmed", "denies", "denied", "reveals", "revealed",
		"discovers", "discovered", "reports", "reported", "claims", "claimed",
		"alleges", "alleged", "states", "stated", "warns", "warned",
	}},
	{1.0, []string{
		"government", "court", "police", "military", "hospital", "university",
		"parliament", "congress", "senate", "ministry", "department",
	}},
	{0.5, []string{
		"million", "billion", "thousand", "percent", "year", "years", "month", "months",
	}},
}

// Summarize produces an extractive summary of at most maxSentences
// sentences. Texts already within the limit come back unchanged. Sentences
// are scored by length, weighted news-keyword hits and position; the top
// scorers are then restored to original document order so the summary reads
// in narrative order, never rank order.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = 3
	}

	sentences := textproc.SplitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.TrimSpace(text)
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		scores[i] = scoreSentence(sentence, i, len(sentences))
	}

	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	// Stable so equal scores fall back to document order.
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	selected := append([]int(nil), ranked[:maxSentences]...)
	sort.Ints(selected)

	parts := make([]string, 0, len(selected))
	for _, idx := range selected {
		parts = append(parts, sentences[idx])
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

func scoreSentence(sentence string, index, total int) float64 {
	lower := strings.ToLower(sentence)

	score := 0.1 * float64(len(strings.Fields(sentence)))

	for _, family := range importanceFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(lower, keyword) {
				score += family.weight
			}
		}
	}

	if index == 0 {
		score += 1.0
	} else if index == total-1 {
		score += 0.5
	}

	return score
}
