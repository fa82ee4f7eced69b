package features

import (
	"strings"
	"testing"
)

func TestDetectWritingStyle_Formal(t *testing.T) {
	text := "Furthermore, the committee's comprehensive analysis indicates substantial growth."
	if got := DetectWritingStyle(text); got != StyleFormal {
		t.Errorf("expected Formal, got %s", got)
	}
}

func TestDetectWritingStyle_Informal(t *testing.T) {
	text := "omg this is soooo cool lol!!"
	if got := DetectWritingStyle(text); got != StyleInformal {
		t.Errorf("expected Informal, got %s", got)
	}
}

func TestDetectWritingStyle_Neutral(t *testing.T) {
	// Ten to twenty words per sentence, no indicator words on either side.
	text := "The council met on Tuesday to review the annual budget for roads. Members voted to continue the discussion at the next scheduled session in March."
	if got := DetectWritingStyle(text); got != StyleNeutral {
		t.Errorf("expected Neutral, got %s", got)
	}
}

func TestClickbaitScore_Range(t *testing.T) {
	titles := []string{
		"",
		"Quiet day in local government",
		"YOU WON'T BELIEVE THIS!!! 7 SECRETS DOCTORS HATE",
		"10 things you need to know... what happens next??",
	}

	for _, title := range titles {
		score := ClickbaitScore(title)
		if score < 0 || score > 1 {
			t.Errorf("score out of range for %q: %f", title, score)
		}
	}
}

func TestClickbaitScore_HighForObviousBait(t *testing.T) {
	score := ClickbaitScore("YOU WON'T BELIEVE THIS!!! 7 SECRETS DOCTORS HATE")
	// Hits the believe, numbered-list, punctuation-run, doctors-hate and
	// uppercase families: 5 of 8.
	if score < 0.5 {
		t.Errorf("expected a high clickbait score, got %f", score)
	}
}

func TestClickbaitScore_ZeroForPlainTitle(t *testing.T) {
	if score := ClickbaitScore("Local library extends opening hours"); score != 0 {
		t.Errorf("expected 0, got %f", score)
	}
}

func TestClickbaitScore_EmptyTitle(t *testing.T) {
	if score := ClickbaitScore(""); score != 0 {
		t.Errorf("expected 0 for empty title, got %f", score)
	}
}

func TestReadability_ShortTextDefault(t *testing.T) {
	for _, text := range []string{"", "Too short.", strings.Repeat("x", 49)} {
		if got := Readability(text); got != DefaultReadability {
			t.Errorf("expected default %f for %q, got %f", DefaultReadability, text, got)
		}
	}
}

func TestReadability_ShortAfterCleaningDefault(t *testing.T) {
	text := "<div><span>hi</span></div> http://example.com/a/very/long/path/that/pads/the/input/out ok"
	if got := Readability(text); got != DefaultReadability {
		t.Errorf("expected default after cleaning, got %f", got)
	}
}

func TestReadability_Clamped(t *testing.T) {
	simple := strings.Repeat("The cat sat on the mat. ", 10)
	score := Readability(simple)
	if score < 0 || score > 100 {
		t.Errorf("score out of bounds: %f", score)
	}
	if score < 80 {
		t.Errorf("expected simple text to score high, got %f", score)
	}

	dense := strings.Repeat("Incomprehensibility characterizes institutional bureaucratization notwithstanding organizational rationalization imperatives considerations ", 5)
	if got := Readability(dense); got > 30 {
		t.Errorf("expected dense text to score low, got %f", got)
	}
}

func TestDetectGenre(t *testing.T) {
	tests := []struct {
		title   string
		content string
		want    string
	}{
		{"Election results announced", "The government confirmed the vote count after the campaign ended.", "Politics"},
		{"Markets rally", "Stock trading surged as investors chased bank shares on the nasdaq.", "Business & Finance"},
		{"New smartphone launched", "The software platform brings machine learning to the app.", "Technology"},
		{"Championship final tonight", "The team and its coach prepare for the big match at the stadium.", "Sports"},
		{"Sunny afternoon", "A pleasant stroll with ice cream and a nap.", GenreGeneral},
	}

	for _, tt := range tests {
		if got := DetectGenre(tt.title, tt.content); got != tt.want {
			t.Errorf("DetectGenre(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestExtractKeywords_ShortInput(t *testing.T) {
	if got := ExtractKeywords("tiny text", KeywordOptions{}); got != nil {
		t.Errorf("expected nil for short input, got %v", got)
	}
}

func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := strings.Repeat("economy ", 4) + strings.Repeat("inflation ", 3) + strings.Repeat("markets ", 2) + "growth outlook forecast"
	keywords := ExtractKeywords(text, KeywordOptions{})

	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	if keywords[0].Word != "Economy" || keywords[0].Frequency != 4 {
		t.Errorf("unexpected top keyword: %+v", keywords[0])
	}
	for i := 1; i < len(keywords); i++ {
		if keywords[i].Frequency > keywords[i-1].Frequency {
			t.Errorf("keywords not in descending frequency order: %+v", keywords)
		}
	}
}

func TestExtractKeywords_BackfillsSingletons(t *testing.T) {
	// Only one word repeats; singletons must fill the remainder.
	text := "economy economy parliament investigation tournament laboratory scholarship"
	keywords := ExtractKeywords(text, KeywordOptions{})

	if len(keywords) < 2 {
		t.Fatalf("expected singleton backfill, got %+v", keywords)
	}
	if keywords[0].Word != "Economy" {
		t.Errorf("expected repeated word first, got %+v", keywords[0])
	}
}

func TestExtractKeywords_RespectsMax(t *testing.T) {
	words := []string{"economy", "inflation", "markets", "growth", "outlook", "forecast", "parliament", "congress", "senate", "election"}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w + " " + w + " ")
	}

	keywords := ExtractKeywords(b.String(), KeywordOptions{Max: 4})
	if len(keywords) != 4 {
		t.Errorf("expected 4 keywords, got %d", len(keywords))
	}
}

func TestExtractKeywords_DropsStopwordsAndShortTokens(t *testing.T) {
	text := "the and was with market market market big big big big"
	keywords := ExtractKeywords(text, KeywordOptions{})

	for _, kw := range keywords {
		lower := strings.ToLower(kw.Word)
		if lower == "the" || lower == "and" || lower == "was" || lower == "with" || lower == "big" {
			t.Errorf("unexpected keyword %q", kw.Word)
		}
	}
}
