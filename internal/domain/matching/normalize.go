package matching

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, replaces every character that is not a letter,
// digit or whitespace with a space, then collapses whitespace runs. The result
// is the canonical form used for vocabulary containment checks.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
