package classifier

import (
	"github.com/newspulse/newspulse/app/textproc"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

var positiveWords = []string{
	"good", "great", "excellent", "positive", "success", "successful", "win",
	"won", "growth", "improve", "improved", "improvement", "breakthrough",
	"achievement", "progress", "benefit", "strong", "record", "boost",
	"recovery", "gain", "rise", "surge", "celebrate", "praised", "hope",
	"optimistic", "agreement", "peace", "innovation", "thriving", "safe",
}

var negativeWords = []string{
	"bad", "terrible", "negative", "crisis", "fail", "failed", "failure",
	"loss", "decline", "crash", "collapse", "disaster", "death", "died",
	"killed", "war", "conflict", "attack", "threat", "fear", "warning",
	"recession", "layoffs", "scandal", "corruption", "fraud", "violence",
	"damage", "emergency", "outbreak", "shortage", "protest", "injured",
}

var positiveSet = make(map[string]struct{}, len(positiveWords))
var negativeSet = make(map[string]struct{}, len(negativeWords))

func init() {
	for _, word := range positiveWords {
		positiveSet[word] = struct{}{}
	}
	for _, word := range negativeWords {
		negativeSet[word] = struct{}{}
	}
}

// WordListClassifier scores sentiment by counting lexicon hits over cleaned
// tokens. It stands in wherever a trained model is not wired up.
type WordListClassifier struct{}

func New() *WordListClassifier {
	return &WordListClassifier{}
}

// Predict labels the text positive or negative with a confidence in
// [0.5, 1.0]. Text with no lexicon hits comes back positive at the minimum
// confidence.
func (c *WordListClassifier) Predict(text string) (string, float64, error) {
	tokens := textproc.Tokenize(textproc.Clean(text))

	positive := 0
	negative := 0
	for _, token := range tokens {
		if _, ok := positiveSet[token]; ok {
			positive++
		}
		if _, ok := negativeSet[token]; ok {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return LabelPositive, 0.5, nil
	}

	if negative > positive {
		return LabelNegative, confidence(negative, total), nil
	}
	return LabelPositive, confidence(positive, total), nil
}

// confidence maps the winning share of lexicon hits onto [0.5, 1.0]
func confidence(winner, total int) float64 {
	share := float64(winner) / float64(total)
	if share < 0.5 {
		share = 0.5
	}
	return share
}
