package cmd

import (
	"fmt"
	"math/rand"

	"github.com/alexedmon1/french-flashcards/internal/config"
	"github.com/alexedmon1/french-flashcards/internal/conjugation"
	"github.com/alexedmon1/french-flashcards/internal/exercise"
	"github.com/alexedmon1/french-flashcards/internal/grammar"
	"github.com/alexedmon1/french-flashcards/internal/session"
	"github.com/alexedmon1/french-flashcards/internal/srs"
	"github.com/alexedmon1/french-flashcards/internal/vocab"
)

// sources holds everything loaded from the data directory. Missing files
// leave their slice/table empty; that domain simply contributes nothing.
type sources struct {
	cards  []vocab.Card
	verbs  *conjugation.Table
	topics []grammar.Topic
}

func loadSources(cfg *config.Config) (*sources, error) {
	cards, err := vocab.Load(cfg.VocabularyPath())
	if err != nil {
		return nil, err
	}
	verbs, err := conjugation.Load(cfg.VerbsPath())
	if err != nil {
		return nil, err
	}
	topics, err := grammar.LoadDir(cfg.GrammarPath())
	if err != nil {
		return nil, err
	}

	src := &sources{cards: cards, verbs: verbs, topics: topics}
	if len(src.cards) == 0 && len(src.verbs.Infinitives()) == 0 && len(src.topics) == 0 {
		return nil, fmt.Errorf("no source data found in %s: expected %s, %s or %s",
			cfg.DataDir, cfg.VocabularyFile, cfg.VerbsFile, cfg.GrammarDir)
	}
	return src, nil
}

// keys enumerates the SRS keys per domain.
func (s *sources) keys(domain exercise.Domain) []string {
	switch domain {
	case exercise.Vocabulary:
		return vocab.Keys(s.cards)
	case exercise.Conjugation:
		return s.verbs.Keys()
	case exercise.Grammar:
		return grammar.Keys(s.topics)
	}
	return nil
}

var allDomains = []exercise.Domain{exercise.Vocabulary, exercise.Conjugation, exercise.Grammar}

// loadStats reads every domain's stats file.
func loadStats(store *srs.Store) (map[exercise.Domain]map[string]*srs.Stats, error) {
	stats := map[exercise.Domain]map[string]*srs.Stats{}
	for _, domain := range allDomains {
		m, err := store.Load(domain.StatsFile())
		if err != nil {
			return nil, err
		}
		stats[domain] = m
	}
	return stats, nil
}

// buildPools regenerates one exercise per item with fresh random
// sub-variants and pairs each domain with its stats.
func buildPools(src *sources, stats map[exercise.Domain]map[string]*srs.Stats, rng *rand.Rand) ([]session.Pool, error) {
	vocabExercises := vocab.Exercises(src.cards, vocab.BuildSynonymIndex(src.cards), rng)
	conjExercises, err := src.verbs.Exercises(rng)
	if err != nil {
		return nil, err
	}
	grammarExercises := grammar.Exercises(src.topics)

	return []session.Pool{
		{Domain: exercise.Vocabulary, Items: vocabExercises, Stats: stats[exercise.Vocabulary]},
		{Domain: exercise.Conjugation, Items: conjExercises, Stats: stats[exercise.Conjugation]},
		{Domain: exercise.Grammar, Items: grammarExercises, Stats: stats[exercise.Grammar]},
	}, nil
}
