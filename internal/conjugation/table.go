// Package conjugation loads the verb table and generates French verb
// paradigms across seven tenses: stem+ending patterns for regular verbs,
// stored forms for irregular ones.
package conjugation

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Verb types as stored in the verb table.
const (
	TypeRegularER = "regular_er"
	TypeRegularIR = "regular_ir"
	TypeIrregular = "irregular"
)

// Verb tiers.
const (
	TierCore         = "core"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// Verb holds one infinitive's entry in the verb table. Explicit Forms
// override algorithmic generation; Stems override the derived future and
// imparfait stems.
type Verb struct {
	Translation    string              `json:"translation"`
	Type           string              `json:"type"`
	Tier           string              `json:"tier"`
	Auxiliary      string              `json:"auxiliary"`
	Reflexive      bool                `json:"reflexive"`
	Stems          map[string]string   `json:"stems,omitempty"`
	Forms          map[string][]string `json:"forms,omitempty"`
	PastParticiple string              `json:"past_participle,omitempty"`
}

// Table is the loaded verb data. Construct with Load and pass by reference;
// the table is read-only after loading.
type Table struct {
	Verbs map[string]Verb `json:"verbs"`
}

// Load reads the verb table JSON. A missing file yields an empty table so
// the conjugation pool simply contributes nothing.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Table{Verbs: map[string]Verb{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read verb table %s: %w", path, err)
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("cannot parse verb table %s: %w", path, err)
	}
	if table.Verbs == nil {
		table.Verbs = map[string]Verb{}
	}
	return &table, nil
}

// Infinitives lists all verbs, sorted for stable enumeration.
func (t *Table) Infinitives() []string {
	verbs := make([]string, 0, len(t.Verbs))
	for v := range t.Verbs {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// ByType lists verbs of one type (regular_er, regular_ir, irregular).
func (t *Table) ByType(verbType string) []string {
	var verbs []string
	for _, v := range t.Infinitives() {
		if t.Verbs[v].Type == verbType {
			verbs = append(verbs, v)
		}
	}
	return verbs
}

// ByTier lists verbs of one tier (core, intermediate, advanced).
func (t *Table) ByTier(tier string) []string {
	var verbs []string
	for _, v := range t.Infinitives() {
		if t.Verbs[v].Tier == tier {
			verbs = append(verbs, v)
		}
	}
	return verbs
}

// Translation returns the English translation of a verb, or "" if unknown.
func (t *Table) Translation(infinitive string) string {
	return t.Verbs[infinitive].Translation
}
