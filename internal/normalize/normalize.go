// Package normalize folds user input for case insensitive matching.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Name(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
