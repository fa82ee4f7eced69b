package summary

import "regexp"

// KeyDetails holds pattern-extracted entities from an article, each capped
// at 5 unique entries in first-seen order.
type KeyDetails struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Numbers       []string `json:"numbers"`
}

const maxDetailEntries = 5

var (
	peoplePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	orgPattern    = regexp.MustCompile(`\b[A-Z][a-zA-Z ]*(?:Corp|Inc|Ltd|Company|Organization|Agency|Department)\b`)
	numberPattern = regexp.MustCompile(`\b\d+(?:,\d{3})*(?:\.\d+)?\b`)
)

// ExtractKeyDetails pulls candidate person names (two consecutive
// capitalized words), organization mentions (capitalized phrase ending in a
// corporate suffix) and numeric tokens out of raw text. It never fails;
// sparse input simply yields empty lists.
func ExtractKeyDetails(text string) KeyDetails {
	return KeyDetails{
		People:        uniqueCapped(peoplePattern.FindAllString(text, -1)),
		Organizations: uniqueCapped(orgPattern.FindAllString(text, -1)),
		Numbers:       uniqueCapped(numberPattern.FindAllString(text, -1)),
	}
}

func uniqueCapped(matches []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if len(out) >= maxDetailEntries {
			break
		}
	}
	return out
}
