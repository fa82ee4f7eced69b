package analyzer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayLanguage converts an ISO language code into its English display
// name. Unknown codes come back as "English".
func DisplayLanguage(code string) string {
	if code == "" || code == "auto" {
		return "English"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "English"
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return "English"
	}
	return name
}
