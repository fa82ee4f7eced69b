package features

import (
	"regexp"
	"strings"
)

// GenreGeneral is the fallback genre when no pattern family scores.
const GenreGeneral = "General News"

type genreEntry struct {
	name     string
	patterns []*regexp.Regexp
}

// genreTable is an ordered list, not a map: ties between genres resolve to
// the earliest entry, and that ordering is part of the classification
// contract.
var genreTable = []genreEntry{
	{"Politics", []*regexp.Regexp{
		regexp.MustCompile(`\b(government|parliament|congress|senate|election|vote|politician|minister|president|prime minister|policy|law|legislation|democracy|republican|democrat|party)\b`),
		regexp.MustCompile(`\b(campaign|ballot|candidate|political|governance|administration|federal|state|municipal|cabinet)\b`),
	}},
	{"Business & Finance", []*regexp.Regexp{
		regexp.MustCompile(`\b(economy|market|stock|trading|investment|profit|loss|revenue|company|corporation|business|financial|money|dollar|euro|currency)\b`),
		regexp.MustCompile(`\b(bank|banking|finance|economic|gdp|inflation|recession|merger|acquisition|startup|entrepreneur|ceo|shares|nasdaq|dow)\b`),
	}},
	{"Technology", []*regexp.Regexp{
		regexp.MustCompile(`\b(technology|tech|digital|computer|software|hardware|internet|ai|artificial intelligence|machine learning|data|cyber|online)\b`),
		regexp.MustCompile(`\b(innovation|smartphone|app|application|platform|coding|programming|robot|automation|blockchain|cryptocurrency|bitcoin)\b`),
	}},
	{"Health & Medicine", []*regexp.Regexp{
		regexp.MustCompile(`\b(health|medical|medicine|doctor|hospital|patient|treatment|disease|virus|vaccine|pharmaceutical|drug|therapy|clinical)\b`),
		regexp.MustCompile(`\b(diagnosis|surgery|healthcare|wellness|mental health|pandemic|epidemic|symptoms|cure|research|study|trial)\b`),
	}},
	{"Sports", []*regexp.Regexp{
		regexp.MustCompile(`\b(sports|football|basketball|baseball|soccer|tennis|golf|olympics|championship|tournament|team|player|coach|game|match)\b`),
		regexp.MustCompile(`\b(athlete|competition|league|season|score|win|victory|defeat|training|fitness|stadium|arena)\b`),
	}},
	{"Entertainment", []*regexp.Regexp{
		regexp.MustCompile(`\b(entertainment|movie|film|actor|actress|director|music|musician|singer|concert|album|tv|television|show|series)\b`),
		regexp.MustCompile(`\b(celebrity|hollywood|cinema|theatre|performance|art|culture|fashion|festival|award|oscar|grammy)\b`),
	}},
	{"Science & Environment", []*regexp.Regexp{
		regexp.MustCompile(`\b(science|research|study|environment|climate|global warming|pollution|energy|renewable|solar|wind|nuclear|space|nasa)\b`),
		regexp.MustCompile(`\b(scientist|discovery|experiment|laboratory|wildlife|conservation|sustainability|carbon|emission|temperature|weather)\b`),
	}},
	{"Crime & Law", []*regexp.Regexp{
		regexp.MustCompile(`\b(crime|criminal|police|law enforcement|court|judge|lawyer|attorney|trial|verdict|guilty|innocent|arrest|investigation)\b`),
		regexp.MustCompile(`\b(justice|legal|lawsuit|prosecution|defendant|evidence|witness|jury|prison|jail|sentence|fine)\b`),
	}},
	{"Education", []*regexp.Regexp{
		regexp.MustCompile(`\b(education|school|university|college|student|teacher|professor|academic|learning|curriculum|degree|graduation)\b`),
		regexp.MustCompile(`\b(classroom|scholarship|tuition|enrollment|campus|research|faculty|administration|exam|test|grade)\b`),
	}},
	{"International", []*regexp.Regexp{
		regexp.MustCompile(`\b(international|global|world|foreign|embassy|diplomat|treaty|alliance|war|conflict|peace|trade|export|import)\b`),
		regexp.MustCompile(`\b(united nations|nato|european union|asia|africa|america|europe|country|nation|border|refugee|immigration)\b`),
	}},
}

// DetectGenre classifies an article into one of ten fixed genres by summing
// pattern match counts over the combined lowercased title and content. The
// strictly highest total wins; the first entry in table order breaks ties.
// All-zero scores yield GenreGeneral.
func DetectGenre(title, content string) string {
	combined := strings.ToLower(title + " " + content)

	best := GenreGeneral
	bestScore := 0

	for _, entry := range genreTable {
		score := 0
		for _, p := range entry.patterns {
			score += len(p.FindAllString(combined, -1))
		}
		if score > bestScore {
			bestScore = score
			best = entry.name
		}
	}

	return best
}
