package summary

import (
	"strings"
	"testing"
)

const fiveSentenceArticle = "The city council met quietly on Monday morning. " +
	"The president announced an emergency response to the historic flood. " +
	"Local bakeries reported steady sales through the week. " +
	"Police confirmed that three people died in the disaster. " +
	"Cleanup crews are expected to finish next month."

func TestSummarize_ShortTextUnchanged(t *testing.T) {
	text := "One sentence here. And a second one."
	if got := Summarize(text, 3); got != text {
		t.Errorf("short text should come back unchanged, got %q", got)
	}
}

func TestSummarize_SelectsRequestedCount(t *testing.T) {
	got := Summarize(fiveSentenceArticle, 2)

	count := strings.Count(got, ".")
	if count != 2 {
		t.Errorf("expected 2 sentences, got %d in %q", count, got)
	}
}

func TestSummarize_PreservesDocumentOrder(t *testing.T) {
	got := Summarize(fiveSentenceArticle, 2)

	// The two heaviest sentences are the announcement and the deaths; they
	// must appear in document order regardless of score order.
	first := strings.Index(got, "president announced")
	second := strings.Index(got, "Police confirmed")
	if first == -1 || second == -1 {
		t.Fatalf("expected the two high-signal sentences, got %q", got)
	}
	if first > second {
		t.Errorf("sentences reordered by score: %q", got)
	}
}

func TestSummarize_EmptyText(t *testing.T) {
	if got := Summarize("", 2); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestExtractKeyDetails(t *testing.T) {
	text := "John Smith of Acme Corp met Jane Doe near the Transport Department. " +
		"The deal is worth 1,250,000 dollars, a 12.5 percent increase."

	details := ExtractKeyDetails(text)

	if !contains(details.People, "John Smith") || !contains(details.People, "Jane Doe") {
		t.Errorf("people extraction failed: %v", details.People)
	}
	if len(details.Organizations) == 0 {
		t.Errorf("expected organizations, got none")
	}
	if !contains(details.Numbers, "1,250,000") || !contains(details.Numbers, "12.5") {
		t.Errorf("number extraction failed: %v", details.Numbers)
	}
}

func TestExtractKeyDetails_CapsAtFive(t *testing.T) {
	var b strings.Builder
	names := []string{"Alice Brown", "Bob Green", "Carol White", "Dan Black", "Eve Stone", "Frank Reed", "Grace Hill"}
	for _, n := range names {
		b.WriteString(n + " spoke. ")
	}

	details := ExtractKeyDetails(b.String())
	if len(details.People) != 5 {
		t.Errorf("expected 5 people, got %d", len(details.People))
	}
}

func TestExtractKeyDetails_EmptyInput(t *testing.T) {
	details := ExtractKeyDetails("")
	if len(details.People) != 0 || len(details.Organizations) != 0 || len(details.Numbers) != 0 {
		t.Errorf("expected empty details, got %+v", details)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
