package features

import (
	"regexp"
	"strings"

	"github.com/newspulse/newspulse/app/textproc"
)

// DefaultReadability is returned for text too short or too degenerate to
// score.
const DefaultReadability = 50.0

var (
	readabilityHTMLPattern = regexp.MustCompile(`<[^>]+>`)
	readabilityURLPattern  = regexp.MustCompile(`http\S+`)
	readabilitySpacePattern = regexp.MustCompile(`\s+`)
)

// Readability scores text with the Flesch Reading Ease formula, clamped to
// [0,100]. Text under 50 characters after HTML/URL stripping yields the
// neutral default of 50. Never fails.
func Readability(text string) float64 {
	if len(strings.TrimSpace(text)) < 50 {
		return DefaultReadability
	}

	cleaned := readabilityHTMLPattern.ReplaceAllString(text, "")
	cleaned = readabilityURLPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(readabilitySpacePattern.ReplaceAllString(cleaned, " "))

	if len(cleaned) < 50 {
		return DefaultReadability
	}

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return DefaultReadability
	}

	sentenceCount := len(textproc.SplitSentences(cleaned))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// countSyllables approximates English syllables as vowel groups, discounting
// a trailing silent 'e'. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}
