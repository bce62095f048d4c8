package conjugation

import (
	"math/rand"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
)

// Keys enumerates the SRS keys of the conjugation pool: the cross product of
// verbs and tenses.
func (t *Table) Keys() []string {
	var keys []string
	for _, verb := range t.Infinitives() {
		for _, tense := range AllTenses() {
			keys = append(keys, verb+"|"+tense)
		}
	}
	return keys
}

// Exercises builds one exercise per verb x tense, each asking a single
// randomly chosen pronoun slot of the paradigm.
func (t *Table) Exercises(rng *rand.Rand) ([]exercise.Exercise, error) {
	var exercises []exercise.Exercise
	for _, verb := range t.Infinitives() {
		for _, tense := range AllTenses() {
			pronouns := RandomPronouns(rng)
			forms, err := t.Conjugate(verb, tense, pronouns)
			if err != nil {
				return nil, err
			}
			slot := rng.Intn(6)
			exercises = append(exercises, &exercise.Conjugate{
				Verb:         verb,
				Tense:        tense,
				TenseDisplay: TenseDisplayName(tense),
				Pronoun:      pronouns[slot],
				CorrectForm:  forms[slot],
				Translation:  t.Translation(verb),
				ItemKey:      verb + "|" + tense,
			})
		}
	}
	return exercises, nil
}
