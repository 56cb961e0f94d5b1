// Package naming derives the casing variants generated files need from a
// user-supplied artifact name.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/conneroisu/expressor/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Forms holds the derived spellings of one raw name.
type Forms struct {
	Raw         string
	Lower       string
	Capitalized string
}

// Normalize computes the name forms for raw. Any string with a
// non-whitespace character is accepted; whether it makes a valid file
// name is left to the file system.
func Normalize(raw string) (Forms, error) {
	if strings.TrimSpace(raw) == "" {
		return Forms{}, errors.NewInvalidNameError(errors.ErrCodeEmptyName, "name is required")
	}

	return Forms{
		Raw:         raw,
		Lower:       Lower(raw),
		Capitalized: Capitalize(raw),
	}, nil
}

// Lower returns the Unicode lowercase form of s.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
