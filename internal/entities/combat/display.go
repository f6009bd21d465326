package combat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a dataset key like "sucker-punch" into "Sucker Punch"
func DisplayName(key string) string {
	// a Caser carries state and is not safe to share
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}
