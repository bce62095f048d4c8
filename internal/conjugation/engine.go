package conjugation

import (
	"fmt"
	"math/rand"
	"strings"
)

// Tense codes.
const (
	TensePresent         = "present"
	TenseFuture          = "future"
	TenseImparfait       = "imparfait"
	TensePast            = "past"
	TenseNearFuture      = "near_future"
	TenseConditional     = "conditional"
	TenseConditionalPast = "conditional_past"
)

// AllTenses returns the supported tense codes, in display order.
func AllTenses() []string {
	return []string{
		TensePresent, TenseFuture, TenseImparfait, TensePast,
		TenseNearFuture, TenseConditional, TenseConditionalPast,
	}
}

var tenseDisplayNames = map[string]string{
	TensePresent:         "présent",
	TenseFuture:          "futur simple",
	TenseImparfait:       "imparfait",
	TensePast:            "passé composé",
	TenseNearFuture:      "futur proche",
	TenseConditional:     "conditionnel présent",
	TenseConditionalPast: "conditionnel passé",
}

// TenseDisplayName returns the French name for a tense code.
func TenseDisplayName(tense string) string {
	if name, ok := tenseDisplayNames[tense]; ok {
		return name
	}
	return tense
}

var erEndings = map[string][]string{
	TensePresent:     {"e", "es", "e", "ons", "ez", "ent"},
	TenseFuture:      {"ai", "as", "a", "ons", "ez", "ont"},
	TenseImparfait:   {"ais", "ais", "ait", "ions", "iez", "aient"},
	TenseConditional: {"ais", "ais", "ait", "ions", "iez", "aient"},
}

var irEndings = map[string][]string{
	TensePresent: {"is", "is", "it", "issons", "issez", "issent"},
}

var (
	avoirPresent     = []string{"ai", "as", "a", "avons", "avez", "ont"}
	avoirConditional = []string{"aurais", "aurais", "aurait", "aurions", "auriez", "auraient"}
	etrePresent      = []string{"suis", "es", "est", "sommes", "êtes", "sont"}
	etreConditional  = []string{"serais", "serais", "serait", "serions", "seriez", "seraient"}
	allerPresent     = []string{"vais", "vas", "va", "allons", "allez", "vont"}
)

// pronounVariations holds the candidate pronouns per paradigm slot; third
// persons carry gendered alternatives.
var pronounVariations = [6][]string{
	{"je"},
	{"tu"},
	{"il", "elle", "on"},
	{"nous"},
	{"vous"},
	{"ils", "elles"},
}

// DisplayPronouns are the slot labels used in full-table display.
var DisplayPronouns = []string{"je", "tu", "il/elle/on", "nous", "vous", "ils/elles"}

var reflexivePrefixes = [6]string{"me ", "te ", "se ", "nous ", "vous ", "se "}

// RandomPronouns picks one concrete pronoun per paradigm slot.
func RandomPronouns(rng *rand.Rand) []string {
	pronouns := make([]string, 6)
	for i, variations := range pronounVariations {
		pronouns[i] = variations[rng.Intn(len(variations))]
	}
	return pronouns
}

// Conjugate generates the six forms of a verb in a tense for the given
// pronouns (DisplayPronouns when pronouns is nil). Unknown verbs and tenses
// are caller errors and fail fast.
func (t *Table) Conjugate(infinitive, tense string, pronouns []string) ([]string, error) {
	verb, ok := t.Verbs[infinitive]
	if !ok {
		return nil, fmt.Errorf("unknown verb: %s", infinitive)
	}
	if pronouns == nil {
		pronouns = DisplayPronouns
	}

	switch tense {
	case TensePresent:
		return conjugatePresent(infinitive, verb), nil
	case TenseFuture:
		return conjugateFuture(infinitive, verb), nil
	case TenseImparfait:
		return conjugateImparfait(infinitive, verb), nil
	case TensePast:
		return conjugateCompound(infinitive, verb, pronouns, false), nil
	case TenseNearFuture:
		return conjugateNearFuture(infinitive, verb), nil
	case TenseConditional:
		return conjugateConditional(infinitive, verb), nil
	case TenseConditionalPast:
		return conjugateCompound(infinitive, verb, pronouns, true), nil
	default:
		return nil, fmt.Errorf("unknown tense: %s", tense)
	}
}

func stem(infinitive string) string {
	for _, suffix := range []string{"er", "ir", "re"} {
		if strings.HasSuffix(infinitive, suffix) {
			return strings.TrimSuffix(infinitive, suffix)
		}
	}
	return infinitive
}

func futureStem(infinitive string, verb Verb) string {
	if s, ok := verb.Stems["future"]; ok {
		return s
	}
	if strings.HasSuffix(infinitive, "re") {
		return strings.TrimSuffix(infinitive, "e")
	}
	return infinitive
}

func imparfaitStem(infinitive string, verb Verb) string {
	if s, ok := verb.Stems["imparfait"]; ok {
		return s
	}
	if verb.Type == TypeRegularIR {
		return stem(infinitive) + "iss"
	}
	return stem(infinitive)
}

func attach(stem string, endings []string) []string {
	forms := make([]string, len(endings))
	for i, ending := range endings {
		forms[i] = stem + ending
	}
	return forms
}

func conjugatePresent(infinitive string, verb Verb) []string {
	if forms, ok := verb.Forms[TensePresent]; ok {
		return forms
	}
	if verb.Type == TypeRegularIR {
		return attach(stem(infinitive), irEndings[TensePresent])
	}
	return attach(stem(infinitive), erEndings[TensePresent])
}

func conjugateFuture(infinitive string, verb Verb) []string {
	if forms, ok := verb.Forms[TenseFuture]; ok {
		return forms
	}
	return attach(futureStem(infinitive, verb), erEndings[TenseFuture])
}

func conjugateImparfait(infinitive string, verb Verb) []string {
	if forms, ok := verb.Forms[TenseImparfait]; ok {
		return forms
	}
	// The -ir iss infix is folded into the stem, so the plain imparfait
	// endings apply to every verb type.
	return attach(imparfaitStem(infinitive, verb), erEndings[TenseImparfait])
}

func conjugateConditional(infinitive string, verb Verb) []string {
	if forms, ok := verb.Forms[TenseConditional]; ok {
		return forms
	}
	return attach(futureStem(infinitive, verb), erEndings[TenseConditional])
}

// PastParticiple returns the participle, generated for regular verbs and
// stored for irregular ones.
func PastParticiple(infinitive string, verb Verb) string {
	if verb.PastParticiple != "" {
		return verb.PastParticiple
	}
	if verb.Type == TypeRegularIR {
		return stem(infinitive) + "i"
	}
	return stem(infinitive) + "é"
}

// agreeParticiple applies gender/number agreement for être verbs.
func agreeParticiple(participle, pronoun, auxiliary string) string {
	if auxiliary != "être" {
		return participle
	}

	for _, base := range []string{"é", "i", "u"} {
		if strings.HasSuffix(participle, base) {
			root := strings.TrimSuffix(participle, base)
			switch pronoun {
			case "elle":
				return root + base + "e"
			case "elles":
				return root + base + "es"
			case "nous", "vous", "ils":
				return root + base + "s"
			}
			return participle
		}
	}

	// Irregular participles without a patternable ending.
	switch participle {
	case "mort":
		switch pronoun {
		case "elle":
			return "morte"
		case "elles":
			return "mortes"
		case "nous", "vous", "ils":
			return "morts"
		}
	case "né":
		switch pronoun {
		case "elle":
			return "née"
		case "elles":
			return "nées"
		case "nous", "vous", "ils":
			return "nés"
		}
	}
	return participle
}

// conjugateCompound builds passé composé and conditionnel passé:
// auxiliary + agreed participle, with reflexive pronoun prefixes.
func conjugateCompound(infinitive string, verb Verb, pronouns []string, conditional bool) []string {
	auxiliary := verb.Auxiliary
	if auxiliary == "" {
		auxiliary = "avoir"
	}
	participle := PastParticiple(infinitive, verb)

	var auxForms []string
	switch {
	case auxiliary == "être" && conditional:
		auxForms = etreConditional
	case auxiliary == "être":
		auxForms = etrePresent
	case conditional:
		auxForms = avoirConditional
	default:
		auxForms = avoirPresent
	}

	forms := make([]string, 6)
	for i := 0; i < 6; i++ {
		agreed := agreeParticiple(participle, pronouns[i], auxiliary)
		if verb.Reflexive {
			forms[i] = reflexivePrefixes[i] + auxForms[i] + " " + agreed
		} else {
			forms[i] = auxForms[i] + " " + agreed
		}
	}
	return forms
}

func conjugateNearFuture(infinitive string, verb Verb) []string {
	forms := make([]string, 6)
	if verb.Reflexive {
		base := strings.TrimPrefix(strings.TrimPrefix(infinitive, "se "), "s'")
		reflexive := [6]string{"me", "te", "se", "nous", "vous", "se"}
		for i := 0; i < 6; i++ {
			forms[i] = allerPresent[i] + " " + reflexive[i] + " " + base
		}
		return forms
	}
	for i := 0; i < 6; i++ {
		forms[i] = allerPresent[i] + " " + infinitive
	}
	return forms
}
