// Package session turns the three exercise pools into one balanced daily
// session and runs the interactive answer loop over it.
package session

import (
	"math/rand"
	"time"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
	"github.com/alexedmon1/french-flashcards/internal/srs"
)

// Defaults for session composition.
const (
	DefaultMaxItems = 60
	DefaultMaxNew   = 10
)

// Pool is one domain's candidates for today plus its review history.
type Pool struct {
	Domain exercise.Domain
	Items  []exercise.Exercise
	Stats  map[string]*srs.Stats
}

// Compose builds the session queue:
//
//  1. Per pool, keep due items and split them into overdue, due-today and
//     new tiers, shuffled within each tier.
//  2. Cap new items at maxNew total, spread evenly across pools.
//  3. Concatenate tiers so each pool's list is priority-ordered.
//  4. Round-robin: each non-empty pool contributes floor(maxItems/n) items
//     from the front of its list; pooled leftovers fill the maxItems mod n
//     remainder slots.
//  5. Shuffle the final selection so domains interleave.
//
// Selection honors priority and balance; presentation order does not. When
// fewer items are due than maxItems, everything due is returned.
func Compose(pools []Pool, maxItems, maxNew int, rng *rand.Rand, today time.Time) []exercise.Exercise {
	if len(pools) == 0 {
		return nil
	}
	day := today.Format(srs.DateLayout)

	newCap := maxNew / len(pools)
	if newCap < 1 {
		newCap = 1
	}
	totalNew := 0

	prioritized := make([][]exercise.Exercise, 0, len(pools))
	for _, pool := range pools {
		var overdue, dueToday, fresh []exercise.Exercise
		for _, item := range pool.Items {
			s, ok := pool.Stats[item.Key()]
			switch {
			case !ok:
				fresh = append(fresh, item)
			case s.DueDate < day:
				overdue = append(overdue, item)
			case s.DueDate == day:
				dueToday = append(dueToday, item)
			}
		}

		shuffle(overdue, rng)
		shuffle(dueToday, rng)
		shuffle(fresh, rng)

		allowed := newCap
		if remaining := maxNew - totalNew; remaining < allowed {
			allowed = remaining
		}
		if allowed < 0 {
			allowed = 0
		}
		if len(fresh) > allowed {
			fresh = fresh[:allowed]
		}
		totalNew += len(fresh)

		list := append(append(overdue, dueToday...), fresh...)
		if len(list) > 0 {
			prioritized = append(prioritized, list)
		}
	}

	selected := balancedSample(prioritized, maxItems, rng)
	shuffle(selected, rng)
	return selected
}

// balancedSample gives each list an equal slot budget taken from its front,
// then fills the remainder slots from the pooled, shuffled leftovers.
func balancedSample(lists [][]exercise.Exercise, budget int, rng *rand.Rand) []exercise.Exercise {
	if len(lists) == 0 || budget <= 0 {
		return nil
	}

	perList := budget / len(lists)
	remainder := budget % len(lists)

	var selected, leftover []exercise.Exercise
	for _, list := range lists {
		take := perList
		if take > len(list) {
			take = len(list)
		}
		selected = append(selected, list[:take]...)
		leftover = append(leftover, list[take:]...)
	}

	shuffle(leftover, rng)
	if remainder > len(leftover) {
		remainder = len(leftover)
	}
	selected = append(selected, leftover[:remainder]...)
	return selected
}

func shuffle(items []exercise.Exercise, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// DueCounts tallies a pool's due items per tier without building the full
// session, for the dashboard views.
type DueCounts struct {
	Overdue int
	Today   int
	New     int
}

func (c DueCounts) Total() int {
	return c.Overdue + c.Today + c.New
}

// CountDue partitions a pool's keys by due tier.
func CountDue(keys []string, stats map[string]*srs.Stats, today time.Time) DueCounts {
	overdue, dueToday, fresh := srs.Partition(keys, stats, today)
	return DueCounts{Overdue: len(overdue), Today: len(dueToday), New: len(fresh)}
}
