package summary

import (
	"regexp"
	"sort"
	"strings"
)

// topicEntry maps a topic label to the keywords that signal it. Ordered
// list: ties resolve to the earlier entry.
type topicEntry struct {
	name     string
	keywords []string
}

var topicTable = []topicEntry{
	{"Technology", []string{"tech", "software", "app", "computer", "digital", "ai", "artificial intelligence", "machine learning"}},
	{"Business", []string{"business", "company", "startup", "entrepreneur", "market", "sales", "revenue", "profit"}},
	{"Education", []string{"learn", "study", "education", "course", "tutorial", "guide", "how to", "tips"}},
	{"Health", []string{"health", "medical", "doctor", "treatment", "fitness", "exercise", "wellness"}},
	{"News", []string{"news", "breaking", "report", "announcement", "update", "latest", "current events"}},
	{"Entertainment", []string{"movie", "music", "game", "entertainment", "celebrity", "show", "performance"}},
	{"Science", []string{"science", "research", "study", "discovery", "experiment", "theory", "analysis"}},
	{"Politics", []string{"politics", "government", "election", "policy", "minister", "president", "law"}},
	{"Sports", []string{"sports", "game", "match", "player", "team", "championship", "tournament"}},
	{"Finance", []string{"money", "investment", "stock", "finance", "economy", "banking", "crypto"}},
}

// Conversational filler and engagement phrases that carry no news value in
// a transcript summary.
var fillerPhrases = []string{
	"in this video", "today we", "i will show", "let me explain", "as you can see",
	"hello everyone", "welcome to", "today i", "in today's", "subscribe",
	"like and subscribe", "don't forget to", "hit the bell", "notification",
	"comment below", "let me know", "what do you think", "thanks for watching",
	"check the description", "link in description", "please like", "share this video",
}

var entityPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

var entityStoplist = map[string]struct{}{
	"This": {}, "That": {}, "The": {}, "They": {}, "Then": {}, "There": {},
}

// DetectTopics finds the dominant topics of a transcript: up to three topic
// labels from the fixed table ranked by keyword presence, plus up to three
// recurring capitalized entities, capped at five in total.
func DetectTopics(transcription string) []string {
	lower := strings.ToLower(transcription)

	type scored struct {
		name  string
		count int
	}
	var hits []scored
	for _, entry := range topicTable {
		count := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, scored{entry.name, count})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	topics := make([]string, 0, 5)
	for i := 0; i < len(hits) && i < 3; i++ {
		topics = append(topics, hits[i].name)
	}

	topics = append(topics, topEntities(transcription, 3)...)

	if len(topics) > 5 {
		topics = topics[:5]
	}
	return topics
}

func topEntities(text string, max int) []string {
	counts := make(map[string]int)
	var order []string
	for _, word := range entityPattern.FindAllString(text, -1) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := entityStoplist[word]; ok {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	var out []string
	for _, word := range order {
		if counts[word] < 2 {
			continue
		}
		out = append(out, word)
		if len(out) >= max {
			break
		}
	}
	return out
}

// SummarizeTranscript summarizes transcribed spoken content. On top of the
// extractive summarizer it drops sentences dominated by filler and
// engagement phrases, unless the sentence is long or filtering would leave
// fewer sentences than requested, and prefixes a synthetic topic
// introduction when the detected topics are absent from the summary.
// Transcripts under 50 characters come back unchanged with no topics.
func SummarizeTranscript(transcription string, maxSentences int) (string, []string) {
	trimmed := strings.TrimSpace(transcription)
	if len(trimmed) < 50 {
		return trimmed, nil
	}
	if maxSentences <= 0 {
		maxSentences = 3
	}

	topics := DetectTopics(transcription)
	base := Summarize(transcription, maxSentences)

	lines := strings.Split(base, ". ")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if !containsFiller(line) || len(line) > 50 {
			cleaned = append(cleaned, line)
		}
	}

	var kept []string
	if len(cleaned) < maxSentences && len(lines) > len(cleaned) {
		kept = lines
	} else {
		kept = cleaned
	}
	if len(kept) > maxSentences {
		kept = kept[:maxSentences]
	}

	result := strings.Join(kept, ". ")
	if result != "" && !strings.HasSuffix(result, ".") {
		result += "."
	}

	if len(topics) > 0 && !topicsCovered(result, topics) {
		intro := topics
		if len(intro) > 3 {
			intro = intro[:3]
		}
		result = "Video discusses " + strings.Join(intro, ", ") + ". " + result
	}

	return result, topics
}

func containsFiller(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range fillerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// topicsCovered reports whether either of the top two topics already
// appears in the summary text.
func topicsCovered(summary string, topics []string) bool {
	lower := strings.ToLower(summary)
	limit := len(topics)
	if limit > 2 {
		limit = 2
	}
	for _, topic := range topics[:limit] {
		if strings.Contains(lower, strings.ToLower(topic)) {
			return true
		}
	}
	return false
}
