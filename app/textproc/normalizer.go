package textproc

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+|www\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	nonLetterPattern  = regexp.MustCompile(`[^a-z\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw text for analysis: lowercases, strips URLs, email
// addresses and HTML tags, drops everything that is not a letter or
// whitespace, and collapses runs of whitespace. Empty input yields an empty
// string. Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = nonLetterPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Preprocess cleans and tokenizes text, optionally removing stopwords and
// stemming each token. Tokens of length 2 or less are dropped. The result is
// the surviving tokens joined by single spaces.
func Preprocess(text string, removeStopwords, stem bool) string {
	if text == "" {
		return ""
	}

	tokens := strings.Fields(Clean(text))

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if removeStopwords && IsStopword(token) {
			continue
		}
		if stem {
			if stemmed, err := snowball.Stem(token, "english", false); err == nil && stemmed != "" {
				token = stemmed
			}
		}
		if len(token) <= 2 {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// Tokenize returns the cleaned lowercase word tokens of text.
func Tokenize(text string) []string {
	return strings.Fields(Clean(text))
}

// TokenSet returns the distinct cleaned tokens of text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range Tokenize(text) {
		set[token] = struct{}{}
	}
	return set
}
