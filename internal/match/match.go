package match

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyThreshold is the minimum similarity ratio accepted as "close enough"
// in fuzzy mode.
const FuzzyThreshold = 0.85

// Mode selects the grading strategy.
type Mode int

const (
	// ModeExact accepts only case-insensitive equality with a variant.
	// Used for conjugation forms and grammar fill-ins.
	ModeExact Mode = iota
	// ModeFuzzy adds parenthetical expansion and similarity matching.
	// Used for vocabulary translations.
	ModeFuzzy
)

var (
	parenRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	spaceRe = regexp.MustCompile(`  +`)
)

// ExpandParens returns the accepted forms of a variant with an optional
// parenthetical part:
//
//	"to sit (down)"     -> ["to sit (down)", "to sit", "to sit down"]
//	"a (female) friend" -> ["a (female) friend", "a friend", "a female friend"]
func ExpandParens(text string) []string {
	forms := []string{text}
	seen := map[string]bool{text: true}

	add := func(form string) {
		if !seen[form] {
			seen[form] = true
			forms = append(forms, form)
		}
	}

	// Parenthetical dropped entirely.
	stripped := strings.TrimSpace(parenRe.ReplaceAllString(text, " "))
	add(spaceRe.ReplaceAllString(stripped, " "))

	// Parens removed, content kept (user typed the full phrase).
	inlined := strings.TrimSpace(strings.NewReplacer("(", "", ")", "").Replace(text))
	add(spaceRe.ReplaceAllString(inlined, " "))

	return forms
}

// Similarity returns the Ratcliff/Obershelp ratio of two strings at
// character granularity, case-insensitively.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	)
	return m.Ratio()
}

// Check reports whether input matches any accepted variant under the given
// mode. It never fails; an unmatched answer is simply false.
func Check(input string, variants []string, mode Mode) bool {
	ok, _ := Score(input, variants, mode)
	return ok
}

// Score grades input against the accepted variants and also returns the best
// similarity ratio seen, which feeds the quality suggestion.
func Score(input string, variants []string, mode Mode) (bool, float64) {
	user := strings.ToLower(strings.TrimSpace(input))

	var accepted []string
	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if mode == ModeFuzzy {
			accepted = append(accepted, ExpandParens(v)...)
		} else {
			accepted = append(accepted, v)
		}
	}

	for _, answer := range accepted {
		if user == answer {
			return true, 1.0
		}
	}
	if mode != ModeFuzzy {
		return false, 0
	}

	best := 0.0
	for _, answer := range accepted {
		if r := Similarity(user, answer); r > best {
			best = r
		}
	}
	return best >= FuzzyThreshold, best
}

// SuggestQuality maps a graded answer to a 0-3 quality rating: exact or
// near-exact recall is good, a fuzzy-only match is hard, a miss is wrong.
// The session loop shows this as a default the user may override.
func SuggestQuality(correct bool, bestRatio float64) int {
	switch {
	case !correct:
		return 0
	case bestRatio >= 0.95:
		return 2
	default:
		return 1
	}
}
