package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Normalize returns the NFC form of value. Combining sequences typed on a
// terminal collapse to the precomposed code points a handheld keyboard would
// have produced; whitespace is kept since it is part of a player name.
func Normalize(value string) string {
	return norm.NFC.String(value)
}

// FoldKey converts value into a case-folded key containing only letters and
// digits. Returns "" when nothing comparable remains.
func FoldKey(value string) string {
	folded := folder.String(norm.NFKC.String(value))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
