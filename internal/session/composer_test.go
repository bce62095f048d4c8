package session

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
	"github.com/alexedmon1/french-flashcards/internal/srs"
)

var today = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

// stub is a minimal exercise for composer tests.
type stub struct {
	key    string
	domain exercise.Domain
}

func (s *stub) Key() string             { return s.key }
func (s *stub) Domain() exercise.Domain { return s.domain }
func (s *stub) Prompt() string          { return s.key }
func (s *stub) CorrectAnswer() string   { return s.key }
func (s *stub) Check(input string) bool { return input == s.key }
func (s *stub) Hint() (string, bool)    { return "", false }

func makePool(domain exercise.Domain, n int, dueDate string) Pool {
	pool := Pool{Domain: domain, Stats: map[string]*srs.Stats{}}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("%s-%d", domain, i)
		pool.Items = append(pool.Items, &stub{key: key, domain: domain})
		if dueDate != "" {
			pool.Stats[key] = &srs.Stats{TimesSeen: 1, DueDate: dueDate}
		}
	}
	return pool
}

func countByDomain(items []exercise.Exercise) map[exercise.Domain]int {
	counts := map[exercise.Domain]int{}
	for _, item := range items {
		counts[item.Domain()]++
	}
	return counts
}

func TestComposeSmallPoolsAreNotStarved(t *testing.T) {
	pools := []Pool{
		makePool(exercise.Vocabulary, 100, "2026-08-20"),
		makePool(exercise.Conjugation, 2, "2026-08-20"),
		makePool(exercise.Grammar, 0, ""),
	}

	got := Compose(pools, 60, 10, rand.New(rand.NewSource(1)), today)
	counts := countByDomain(got)

	// Two non-empty pools share the budget: 30 slots each, conjugation only
	// fills 2 of its own, and the leftover pool covers just the remainder
	// slots (60 mod 2 = 0 here).
	assert.Equal(t, 2, counts[exercise.Conjugation], "small pool fully included")
	assert.Equal(t, 30, counts[exercise.Vocabulary])
	assert.Zero(t, counts[exercise.Grammar])
}

func TestComposeNewItemCap(t *testing.T) {
	pools := []Pool{
		makePool(exercise.Vocabulary, 20, ""),
		makePool(exercise.Conjugation, 20, ""),
		makePool(exercise.Grammar, 20, ""),
	}

	got := Compose(pools, 60, 10, rand.New(rand.NewSource(2)), today)
	counts := countByDomain(got)

	total := len(got)
	assert.LessOrEqual(t, total, 10, "new items capped at maxNew")
	for _, domain := range []exercise.Domain{exercise.Vocabulary, exercise.Conjugation, exercise.Grammar} {
		assert.LessOrEqual(t, counts[domain], 3+1, "new items roughly balanced")
		assert.GreaterOrEqual(t, counts[domain], 1)
	}
}

func TestComposeReturnsAllWhenUnderBudget(t *testing.T) {
	pools := []Pool{
		makePool(exercise.Vocabulary, 5, "2026-08-28"),
		makePool(exercise.Conjugation, 3, "2026-08-29"),
		makePool(exercise.Grammar, 0, ""),
	}

	got := Compose(pools, 60, 10, rand.New(rand.NewSource(3)), today)
	require.Len(t, got, 8, "no padding beyond what is due")
}

func TestComposeSkipsNotYetDue(t *testing.T) {
	pools := []Pool{
		makePool(exercise.Vocabulary, 4, "2026-09-10"),
		makePool(exercise.Conjugation, 2, "2026-08-29"),
		makePool(exercise.Grammar, 0, ""),
	}

	got := Compose(pools, 60, 10, rand.New(rand.NewSource(4)), today)
	counts := countByDomain(got)
	assert.Zero(t, counts[exercise.Vocabulary])
	assert.Equal(t, 2, counts[exercise.Conjugation])
}

func TestComposeOverduePreferredWithinDomain(t *testing.T) {
	pool := Pool{Domain: exercise.Vocabulary, Stats: map[string]*srs.Stats{}}
	for i := 0; i < 30; i++ {
		key := fmt.Sprintf("overdue-%d", i)
		pool.Items = append(pool.Items, &stub{key: key, domain: exercise.Vocabulary})
		pool.Stats[key] = &srs.Stats{TimesSeen: 1, DueDate: "2026-08-01"}
	}
	for i := 0; i < 30; i++ {
		key := fmt.Sprintf("today-%d", i)
		pool.Items = append(pool.Items, &stub{key: key, domain: exercise.Vocabulary})
		pool.Stats[key] = &srs.Stats{TimesSeen: 1, DueDate: "2026-08-29"}
	}

	// One pool, budget 30: only the overdue tier fits.
	got := Compose([]Pool{pool}, 30, 10, rand.New(rand.NewSource(5)), today)
	require.Len(t, got, 30)
	for _, item := range got {
		assert.Contains(t, item.Key(), "overdue-")
	}
}

func TestComposeEmptyPools(t *testing.T) {
	assert.Empty(t, Compose(nil, 60, 10, rand.New(rand.NewSource(6)), today))
	pools := []Pool{
		makePool(exercise.Vocabulary, 0, ""),
		makePool(exercise.Conjugation, 0, ""),
		makePool(exercise.Grammar, 0, ""),
	}
	assert.Empty(t, Compose(pools, 60, 10, rand.New(rand.NewSource(7)), today))
}

func TestCountDue(t *testing.T) {
	stats := map[string]*srs.Stats{
		"a": {DueDate: "2026-08-01"},
		"b": {DueDate: "2026-08-29"},
		"c": {DueDate: "2026-09-10"},
	}
	counts := CountDue([]string{"a", "b", "c", "d"}, stats, today)
	assert.Equal(t, DueCounts{Overdue: 1, Today: 1, New: 1}, counts)
	assert.Equal(t, 3, counts.Total())
}
