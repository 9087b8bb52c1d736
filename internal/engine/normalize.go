package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// punctuation is replaced with a space before tokenization. It covers the
// Persian comma and semicolon alongside their Latin equivalents.
const punctuation = "،؛:.,!?;"

// stripForeign removes every rune that is not a Persian letter, a Persian or
// Latin digit, or whitespace.
var stripForeign = runes.Remove(runes.Predicate(func(r rune) bool {
	switch {
	case r >= 'آ' && r <= 'ی':
		return false
	case r >= '۰' && r <= '۹':
		return false
	case r >= '0' && r <= '9':
		return false
	case unicode.IsSpace(r):
		return false
	}
	return true
}))

// Normalize canonicalizes raw text for comparison: punctuation becomes
// spaces, the text is lowercased, foreign characters are stripped, and
// whitespace is collapsed to single spaces. It never fails; empty or
// symbol-only input yields the empty string, and the result is idempotent
// under repeated application.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, text)

	text = strings.ToLower(text)
	text, _, _ = transform.String(stripForeign, text)

	return strings.Join(strings.Fields(text), " ")
}
