package search

import (
	"strings"
	"unicode"
)

// ExtractKeywords turns a raw query into distinct lower-case terms,
// preserving first-seen order. Single-character tokens are noise and
// get dropped.
func ExtractKeywords(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}
	}

	b := strings.Builder{}
	b.Grow(len(query))
	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	out := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for _, w := range strings.Fields(b.String()) {
		if len([]rune(w)) < 2 {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
