package exercise

import (
	"fmt"

	"github.com/alexedmon1/french-flashcards/internal/match"
)

// Conjugate asks for one slot of a verb's paradigm in one tense. The pronoun
// and form are fixed when the exercise is built; checking is exact.
type Conjugate struct {
	Verb         string
	Tense        string
	TenseDisplay string
	Pronoun      string
	CorrectForm  string
	Translation  string
	ItemKey      string
}

func (c *Conjugate) Key() string    { return c.ItemKey }
func (c *Conjugate) Domain() Domain { return Conjugation }

func (c *Conjugate) Prompt() string {
	return fmt.Sprintf("%s (%s) - %s\n%s ...", c.Verb, c.Translation, c.TenseDisplay, c.Pronoun)
}

func (c *Conjugate) CorrectAnswer() string {
	return fmt.Sprintf("%s %s", c.Pronoun, c.CorrectForm)
}

func (c *Conjugate) Check(input string) bool {
	return match.Check(input, []string{c.CorrectForm}, match.ModeExact)
}

func (c *Conjugate) Hint() (string, bool) {
	runes := []rune(c.CorrectForm)
	if len(runes) < 3 {
		return "", false
	}
	return fmt.Sprintf("Starts with: %s...", string(runes[:2])), true
}
