// Package match grades free-text answers: input cleanup, parenthetical
// variant expansion, case-insensitive and fuzzy comparison, and the quality
// suggestion derived from a graded answer.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Typing accented characters and backspacing over them can leave malformed
// sequences and invisible joiners in terminal input. These never reach the
// comparison logic.
var invisibleRunes = map[rune]bool{
	'​': true, '‌': true, '‍': true, '⁠': true,
	'\uFEFF': true, '­': true, '͏': true, '؜': true,
	'ᅟ': true, 'ᅠ': true, '឴': true, '឵': true,
	'᠎': true, ' ': true, ' ': true, ' ': true,
	' ': true, ' ': true, ' ': true, ' ': true,
	' ': true, ' ': true, ' ': true, ' ': true,
	'‪': true, '‫': true, '‬': true, '‭': true,
	'‮': true, '⁦': true, '⁧': true, '⁨': true,
	'⁩': true,
}

// Normalize cleans up raw terminal input: applies literal backspace/DEL
// bytes, composes combining sequences to NFC, strips invisible and control
// characters, and trims. It never fails; garbage in, best effort out.
func Normalize(text string) string {
	var kept []rune
	for _, r := range text {
		if r == '\b' || r == '' {
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
			continue
		}
		kept = append(kept, r)
	}

	composed := norm.NFC.String(string(kept))

	var b strings.Builder
	for _, r := range composed {
		if invisibleRunes[r] {
			continue
		}
		if (unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r)) &&
			r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
