package location

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAddressLine1 trims, collapses inner whitespace and title-cases s.
func NormalizeAddressLine1(s string) string {
	return cases.Title(language.Und).String(collapseSpaces(s))
}

// NormalizeUpper trims, collapses inner whitespace and upper-cases s. It is used for
// address line 2, city, state and country code.
func NormalizeUpper(s string) string {
	return cases.Upper(language.Und).String(collapseSpaces(s))
}

// NormalizePostalCode trims and collapses whitespace; postal codes keep their case.
func NormalizePostalCode(s string) string {
	return collapseSpaces(s)
}

// IsCountryCode reports whether code is two ASCII letters.
func IsCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := range len(code) {
		ch := code[i]
		if (ch < 'A' || ch > 'Z') && (ch < 'a' || ch > 'z') {
			return false
		}
	}
	return true
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
