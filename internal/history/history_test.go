package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(t *testing.T, store *Store, date string) {
	t.Helper()
	require.NoError(t, store.Record(Session{
		Date: date, Total: 10, Correct: 8, Accuracy: 80, DurationSec: 300,
		Vocabulary: 5, Conjugation: 3, Grammar: 2,
	}))
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	record(t, store, "2026-08-27")
	record(t, store, "2026-08-28")

	sessions, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "2026-08-28", sessions[0].Date, "newest first")
	assert.Equal(t, 8, sessions[0].Correct)
	assert.Equal(t, 5, sessions[0].Vocabulary)

	sessions, err = store.Recent(1)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestStreakEmpty(t *testing.T) {
	store := openTestStore(t)
	streak, err := store.Streak(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func TestStreakConsecutiveDays(t *testing.T) {
	store := openTestStore(t)
	record(t, store, "2026-08-27")
	record(t, store, "2026-08-28")
	record(t, store, "2026-08-29")
	record(t, store, "2026-08-29") // same-day repeat does not double count

	streak, err := store.Streak(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestStreakSurvivesUntilTomorrow(t *testing.T) {
	store := openTestStore(t)
	record(t, store, "2026-08-27")
	record(t, store, "2026-08-28")

	// Not practiced yet today: yesterday's run still counts.
	streak, err := store.Streak(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestStreakBrokenByGap(t *testing.T) {
	store := openTestStore(t)
	record(t, store, "2026-08-20")
	record(t, store, "2026-08-21")

	streak, err := store.Streak(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func TestStreakGapInMiddle(t *testing.T) {
	store := openTestStore(t)
	record(t, store, "2026-08-20")
	record(t, store, "2026-08-28")
	record(t, store, "2026-08-29")

	streak, err := store.Streak(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}
