package dto

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials upper-cases the first rune of each word; "S" for an empty name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return "S"
	}
	return b.String()
}
