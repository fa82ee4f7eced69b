package analyzer

import (
	"context"

	"github.com/newspulse/newspulse/app/database"
)

// Classifier labels text with a sentiment and a confidence. The analyzer
// cannot run without one.
type Classifier interface {
	Predict(text string) (label string, confidence float64, err error)
}

// Translator detects and translates languages. A disabled translator makes
// the analyzer assume English input.
type Translator interface {
	Enabled() bool
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// HistoryStore provides the recent corpus used for similar-article lookups
type HistoryStore interface {
	GetRecentContents(limit int) ([]database.Article, error)
}
