// Package vocab loads the vocabulary CSV and builds translation exercises,
// including the reverse synonym index that lets any French word with a shared
// English meaning be accepted.
package vocab

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
)

// Card is one vocabulary entry. French and English are the primary variants;
// the variant slices hold every |-delimited alternative from the CSV row.
type Card struct {
	French          string
	English         string
	FrenchVariants  []string
	EnglishVariants []string
	Category        string
	Gender          string
}

// Key is the SRS tracking key: primary French and English forms.
func (c Card) Key() string {
	return c.French + "|" + c.English
}

var genderMarkers = map[string]bool{
	"m": true, "f": true, "masculine": true, "feminine": true,
}

// Load reads the vocabulary CSV. Rows are
// french,english[,category][,gender]; the first two columns may carry
// |-delimited variants; a lone third column is treated as gender when it
// looks like a gender marker, otherwise as a category. A missing file is an
// empty pool, not an error.
func Load(path string) ([]Card, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open vocabulary file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse vocabulary file %s: %w", path, err)
	}

	var cards []Card
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		card := Card{
			FrenchVariants:  splitVariants(row[0]),
			EnglishVariants: splitVariants(row[1]),
		}
		if len(card.FrenchVariants) == 0 || len(card.EnglishVariants) == 0 {
			continue
		}
		card.French = card.FrenchVariants[0]
		card.English = card.EnglishVariants[0]

		switch {
		case len(row) >= 4:
			card.Category = strings.TrimSpace(row[2])
			card.Gender = strings.ToLower(strings.TrimSpace(row[3]))
		case len(row) == 3:
			third := strings.ToLower(strings.TrimSpace(row[2]))
			if genderMarkers[third] {
				card.Gender = third
			} else {
				card.Category = strings.TrimSpace(row[2])
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func splitVariants(field string) []string {
	var variants []string
	for _, v := range strings.Split(field, "|") {
		if v = strings.TrimSpace(v); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}

// FilterByCategory keeps cards whose category matches, case-insensitively.
// An empty filter keeps everything.
func FilterByCategory(cards []Card, category string) []Card {
	if category == "" {
		return cards
	}
	var kept []Card
	for _, c := range cards {
		if strings.EqualFold(c.Category, category) {
			kept = append(kept, c)
		}
	}
	return kept
}

// Categories lists the distinct categories present, sorted.
func Categories(cards []Card) []string {
	seen := map[string]bool{}
	for _, c := range cards {
		if c.Category != "" {
			seen[c.Category] = true
		}
	}
	var categories []string
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// SynonymIndex maps a normalized English meaning to every French word that
// carries it. Rebuilt from the full card list before each session.
type SynonymIndex map[string][]string

// BuildSynonymIndex scans every card once and records, per English meaning,
// all French words sharing it.
func BuildSynonymIndex(cards []Card) SynonymIndex {
	idx := SynonymIndex{}
	for _, card := range cards {
		for _, eng := range card.EnglishVariants {
			meaning := strings.ToLower(strings.TrimSpace(eng))
			for _, fr := range card.FrenchVariants {
				if !contains(idx[meaning], fr) {
					idx[meaning] = append(idx[meaning], fr)
				}
			}
		}
	}
	return idx
}

// FrenchSynonyms returns the French words that share any of the card's
// English meanings, excluding the card's own variants.
func (idx SynonymIndex) FrenchSynonyms(card Card) []string {
	var synonyms []string
	for _, eng := range card.EnglishVariants {
		meaning := strings.ToLower(strings.TrimSpace(eng))
		for _, fr := range idx[meaning] {
			if !contains(card.FrenchVariants, fr) && !contains(synonyms, fr) {
				synonyms = append(synonyms, fr)
			}
		}
	}
	return synonyms
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Keys enumerates the SRS keys of all cards.
func Keys(cards []Card) []string {
	keys := make([]string, len(cards))
	for i, c := range cards {
		keys[i] = c.Key()
	}
	return keys
}

// Exercises builds one translation exercise per card with a randomly chosen
// direction, resolving synonyms through the index.
func Exercises(cards []Card, idx SynonymIndex, rng *rand.Rand) []exercise.Exercise {
	exercises := make([]exercise.Exercise, 0, len(cards))
	for _, card := range cards {
		direction := exercise.ToEnglish
		if rng.Intn(2) == 1 {
			direction = exercise.ToFrench
		}
		exercises = append(exercises, &exercise.Vocab{
			French:          card.French,
			English:         card.English,
			FrenchVariants:  card.FrenchVariants,
			EnglishVariants: card.EnglishVariants,
			FrenchSynonyms:  idx.FrenchSynonyms(card),
			Direction:       direction,
			ItemKey:         card.Key(),
		})
	}
	return exercises
}
