package exercise

import (
	"strings"

	"github.com/alexedmon1/french-flashcards/internal/match"
)

// Direction is which way a vocabulary card is asked.
type Direction int

const (
	// ToEnglish shows the French word and expects the English meaning.
	ToEnglish Direction = iota
	// ToFrench shows the English meaning and expects the French word.
	ToFrench
)

func (d Direction) String() string {
	if d == ToFrench {
		return "English -> French"
	}
	return "French -> English"
}

// Vocab is a translation exercise for one card in one direction. French
// synonyms are other French words sharing an English meaning with this card;
// they are accepted in the ToFrench direction.
type Vocab struct {
	French          string
	English         string
	FrenchVariants  []string
	EnglishVariants []string
	FrenchSynonyms  []string
	Direction       Direction
	ItemKey         string
}

func (v *Vocab) Key() string    { return v.ItemKey }
func (v *Vocab) Domain() Domain { return Vocabulary }

func (v *Vocab) Prompt() string {
	if v.Direction == ToEnglish {
		return v.French
	}
	return v.English
}

func (v *Vocab) CorrectAnswer() string {
	var all []string
	if v.Direction == ToEnglish {
		all = v.EnglishVariants
	} else {
		all = append(append([]string{}, v.FrenchVariants...), v.FrenchSynonyms...)
	}
	if len(all) > 1 {
		return strings.Join(all, " / ")
	}
	if v.Direction == ToEnglish {
		return v.English
	}
	return v.French
}

func (v *Vocab) accepted() []string {
	if v.Direction == ToEnglish {
		return v.EnglishVariants
	}
	return append(append([]string{}, v.FrenchVariants...), v.FrenchSynonyms...)
}

func (v *Vocab) Check(input string) bool {
	return match.Check(input, v.accepted(), match.ModeFuzzy)
}

func (v *Vocab) Score(input string) (bool, float64) {
	return match.Score(input, v.accepted(), match.ModeFuzzy)
}

func (v *Vocab) Hint() (string, bool) { return "", false }
