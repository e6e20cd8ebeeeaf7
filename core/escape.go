package core

import (
	"strings"
	"unicode"
)

const patternMetachars = `-[]{}()*+?.,\^$|#`

// EscapePattern backslash-escapes every regular-expression metacharacter and
// whitespace rune in text so that a compiled pattern matches the search input
// literally. Free-text search goes through here before it ever reaches a
// pattern compiler, which also rules out malformed-pattern errors and
// pathological patterns from user input.
func EscapePattern(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if strings.ContainsRune(patternMetachars, r) || unicode.IsSpace(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
