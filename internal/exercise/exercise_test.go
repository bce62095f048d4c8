package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func vocabCard(dir Direction) *Vocab {
	return &Vocab{
		French:          "s'asseoir",
		English:         "to sit (down)",
		FrenchVariants:  []string{"s'asseoir"},
		EnglishVariants: []string{"to sit (down)"},
		FrenchSynonyms:  []string{"prendre place"},
		Direction:       dir,
		ItemKey:         "s'asseoir|to sit (down)",
	}
}

func TestVocabToEnglish(t *testing.T) {
	v := vocabCard(ToEnglish)

	assert.Equal(t, "s'asseoir", v.Prompt())
	assert.True(t, v.Check("to sit down"))
	assert.True(t, v.Check("to sit"))
	assert.False(t, v.Check("to stand"))
	assert.Equal(t, Vocabulary, v.Domain())
	_, ok := v.Hint()
	assert.False(t, ok)
}

func TestVocabToFrenchAcceptsSynonyms(t *testing.T) {
	v := vocabCard(ToFrench)

	assert.Equal(t, "to sit (down)", v.Prompt())
	assert.True(t, v.Check("s'asseoir"))
	assert.True(t, v.Check("prendre place"), "synonym sharing the meaning is accepted")
	assert.Contains(t, v.CorrectAnswer(), "prendre place")
}

func TestVocabScore(t *testing.T) {
	v := vocabCard(ToEnglish)
	correct, ratio := v.Score("to sit down")
	assert.True(t, correct)
	assert.Equal(t, 1.0, ratio)
}

func TestConjugate(t *testing.T) {
	c := &Conjugate{
		Verb:         "parler",
		Tense:        "present",
		TenseDisplay: "présent",
		Pronoun:      "je",
		CorrectForm:  "parle",
		Translation:  "to speak",
		ItemKey:      "parler|present",
	}

	assert.Contains(t, c.Prompt(), "parler (to speak)")
	assert.Contains(t, c.Prompt(), "je ...")
	assert.Equal(t, "je parle", c.CorrectAnswer())
	assert.True(t, c.Check("Parle"))
	assert.False(t, c.Check("parles"))

	hint, ok := c.Hint()
	assert.True(t, ok)
	assert.Equal(t, "Starts with: pa...", hint)
}

func TestConjugateShortFormHasNoHint(t *testing.T) {
	c := &Conjugate{CorrectForm: "ai"}
	_, ok := c.Hint()
	assert.False(t, ok)
}

func TestFill(t *testing.T) {
	f := &Fill{
		TopicName:      "passe_compose",
		SentenceBefore: "Hier, je",
		SentenceAfter:  "au cinéma.",
		Answer:         "suis allé",
		Alternatives:   []string{"suis allée"},
		HintText:       "aller takes être",
		Translation:    "Yesterday I went to the movies.",
		ItemKey:        "passe_compose|12",
	}

	assert.Contains(t, f.Prompt(), "Passe Compose")
	assert.Contains(t, f.Prompt(), "Hier, je __________ au cinéma.")
	assert.Contains(t, f.Prompt(), "Yesterday I went")
	assert.Equal(t, "Hier, je suis allé au cinéma.", f.CorrectAnswer())
	assert.True(t, f.Check("suis allé"))
	assert.True(t, f.Check("SUIS ALLÉE"), "alternatives accepted case-insensitively")
	assert.False(t, f.Check("suis all"))

	hint, ok := f.Hint()
	assert.True(t, ok)
	assert.Equal(t, "aller takes être", hint)
}
