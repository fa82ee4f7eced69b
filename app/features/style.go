package features

import (
	"regexp"
	"strings"

	"github.com/newspulse/newspulse/app/textproc"
)

// Writing style labels.
const (
	StyleFormal   = "Formal"
	StyleInformal = "Informal"
	StyleNeutral  = "Neutral"
)

var formalIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\b(therefore|furthermore|moreover|consequently|nevertheless|however)\b`),
	regexp.MustCompile(`\b(in conclusion|in summary|to summarize)\b`),
	regexp.MustCompile(`\b(according to|pursuant to|with respect to)\b`),
	regexp.MustCompile(`\b(demonstrate|indicate|conclude|establish)\b`),
	regexp.MustCompile(`\b(significant|substantial|considerable|comprehensive)\b`),
}

var informalIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\b(gonna|wanna|gotta|kinda|sorta)\b`),
	regexp.MustCompile(`\b(awesome|cool|amazing|crazy|super)\b`),
	regexp.MustCompile(`\b(yeah|yep|nope|ok|okay)\b`),
	regexp.MustCompile(`[!]{2,}|[?]{2,}`),
	regexp.MustCompile(`\b(lol|omg|wtf|btw|fyi)\b`),
}

// DetectWritingStyle classifies text as Formal, Informal or Neutral by
// counting indicator pattern hits over the lowercased text. Mean sentence
// length above 20 words adds 2 to the formal counter, below 10 adds 1 to the
// informal counter. A tie yields Neutral.
func DetectWritingStyle(text string) string {
	lower := strings.ToLower(text)

	formal := 0
	for _, p := range formalIndicators {
		formal += len(p.FindAllString(lower, -1))
	}

	informal := 0
	for _, p := range informalIndicators {
		informal += len(p.FindAllString(lower, -1))
	}

	avg := averageSentenceLength(text)
	if avg > 20 {
		formal += 2
	} else if avg < 10 {
		informal++
	}

	switch {
	case formal > informal:
		return StyleFormal
	case informal > formal:
		return StyleInformal
	default:
		return StyleNeutral
	}
}

func averageSentenceLength(text string) float64 {
	sentences := textproc.SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	return float64(words) / float64(len(sentences))
}
