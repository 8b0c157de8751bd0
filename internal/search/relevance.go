package search

import (
	"strings"
	"unicode/utf8"
)

const (
	highlightWindow = 50
	maxHighlights   = 3
)

// Relevance scores how well a document matches the keywords. Each
// occurrence contributes proportionally to the keyword length, so a hit
// on "kubernetes" outweighs a hit on "go". Capped at 1.0.
func Relevance(text string, keywords []string) float64 {
	if text == "" || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0.0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		count := strings.Count(lower, kw)
		score += float64(count) * float64(len(kw)) / 10.0
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// Highlights returns up to three snippets around keyword hits, each with
// the hit wrapped in ** markers and up to 50 characters of context on
// both sides.
func Highlights(text string, keywords []string) []string {
	out := make([]string, 0, maxHighlights)
	if text == "" || len(keywords) == 0 {
		return out
	}

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if len(out) >= maxHighlights {
			break
		}
		if kw == "" {
			continue
		}

		at := strings.Index(lower, kw)
		if at < 0 {
			continue
		}

		start := runeFloor(text, at-highlightWindow)
		end := runeCeil(text, at+len(kw)+highlightWindow)

		snippet := text[start:at] + "**" + text[at:at+len(kw)] + "**" + text[at+len(kw):end]
		out = append(out, strings.TrimSpace(snippet))
	}
	return out
}

// runeFloor clamps a byte offset into the string and walks it back to the
// start of a rune.
func runeFloor(s string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// runeCeil clamps a byte offset into the string and walks it forward past
// any partial rune.
func runeCeil(s string, i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}
