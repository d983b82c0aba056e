package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize title-cases s: it splits on whitespace, uppercases the first
// rune of every word, lowercases the rest and joins the words with single
// spaces. The result does not depend on the process locale.
func Normalize(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		first, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(strings.ToLower(w[size:]))
	}
	return b.String()
}
