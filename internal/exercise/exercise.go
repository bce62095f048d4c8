// Package exercise defines the uniform contract the session layer uses to
// drill an item, plus the three concrete variants (vocabulary, conjugation,
// grammar). The scheduler and composer only ever see the interface.
package exercise

// Domain tags an exercise with the pool it belongs to. Each domain has its
// own stats file.
type Domain string

const (
	Vocabulary  Domain = "Vocabulary"
	Conjugation Domain = "Conjugation"
	Grammar     Domain = "Grammar"
)

// StatsFile returns the per-domain stats file name inside the data
// directory.
func (d Domain) StatsFile() string {
	switch d {
	case Vocabulary:
		return "card_stats.json"
	case Conjugation:
		return "conjugation_stats.json"
	case Grammar:
		return "grammar_stats.json"
	}
	return string(d) + "_stats.json"
}

// Exercise is a single reviewable question. Values are ephemeral: rebuilt
// from source data every session, never persisted. Only Key survives, as the
// lookup into the domain's stats file.
type Exercise interface {
	// Key is the stable SRS tracking key, e.g. "chat|cat" or "parler|present".
	Key() string
	Domain() Domain
	// Prompt is the question text shown to the user.
	Prompt() string
	// CorrectAnswer is the display form shown after answering.
	CorrectAnswer() string
	// Check grades a normalized user answer.
	Check(input string) bool
	// Hint returns optional help text.
	Hint() (string, bool)
}

// Scorer is implemented by exercises that can grade with a similarity ratio
// in addition to a boolean, enabling a finer quality suggestion.
type Scorer interface {
	Score(input string) (correct bool, ratio float64)
}
