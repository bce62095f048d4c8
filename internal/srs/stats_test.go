package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestNewStats(t *testing.T) {
	s := NewStats(day)
	assert.Equal(t, 0, s.TimesSeen)
	assert.Equal(t, 0, s.TimesCorrect)
	assert.Nil(t, s.LastReviewed)
	assert.Equal(t, InitialEaseFactor, s.EaseFactor)
	assert.Equal(t, "2026-08-29", s.DueDate)
}

func TestUpdateBootstrapIntervals(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		days    int
	}{
		{"hard", QualityHard, 1},
		{"good", QualityGood, 3},
		{"easy", QualityEasy, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats(day)
			s.Update(tt.quality, day)
			assert.Equal(t, tt.days, s.Interval)
			assert.Equal(t, day.AddDate(0, 0, tt.days).Format(DateLayout), s.DueDate)
			assert.Equal(t, 1, s.TimesSeen)
			assert.Equal(t, 1, s.TimesCorrect)
			require.NotNil(t, s.LastReviewed)
			assert.Equal(t, "2026-08-29", *s.LastReviewed)
		})
	}
}

func TestUpdateWrongAnswer(t *testing.T) {
	s := NewStats(day)
	s.Interval = 30
	s.EaseFactor = 2.8

	s.Update(QualityWrong, day)

	assert.Equal(t, 0, s.Interval)
	assert.Equal(t, day.Format(DateLayout), s.DueDate, "quality 0 is due again immediately")
	assert.Equal(t, 1, s.TimesSeen)
	assert.Equal(t, 0, s.TimesCorrect)
	assert.Less(t, s.EaseFactor, 2.8, "failing lowers ease")
}

// The bootstrap table applies only to the first-ever correct review, even if
// prior wrong answers left a stale interval behind.
func TestBootstrapIgnoresPriorWrongAnswers(t *testing.T) {
	s := NewStats(day)
	s.Update(QualityWrong, day)
	s.Update(QualityWrong, day)
	s.Update(QualityGood, day)

	assert.Equal(t, 1, s.TimesCorrect)
	assert.Equal(t, 3, s.Interval)
}

// After the first correct review the fixed table never applies again: a
// failure followed by a success multiplies the (zeroed) interval instead.
func TestBootstrapFiresOncePerLifetime(t *testing.T) {
	s := NewStats(day)
	s.Update(QualityGood, day) // bootstrap: interval 3
	s.Update(QualityWrong, day)
	require.Equal(t, 0, s.Interval)

	s.Update(QualityGood, day)
	assert.Equal(t, 2, s.TimesCorrect)
	assert.Equal(t, 0, s.Interval, "interval 0 times ease stays 0; no bootstrap re-entry")
}

func TestIntervalGrowsByEase(t *testing.T) {
	s := NewStats(day)
	s.Update(QualityGood, day)
	require.Equal(t, 3, s.Interval)

	s.Update(QualityGood, day)
	// Quality 2 leaves ease at 2.5, so the second good answer grows the
	// interval to floor(3 * 2.5).
	assert.Equal(t, 7, s.Interval)
}

func TestEaseFactorFloor(t *testing.T) {
	s := NewStats(day)
	for i := 0; i < 20; i++ {
		s.Update(QualityWrong, day)
	}
	assert.Equal(t, MinEaseFactor, s.EaseFactor)
}

func TestEaseFactorDeltas(t *testing.T) {
	tests := []struct {
		quality int
		delta   float64
	}{
		{QualityWrong, -0.32},
		{QualityHard, -0.14},
		{QualityGood, 0.0},
		{QualityEasy, 0.1},
	}
	for _, tt := range tests {
		s := NewStats(day)
		s.Update(tt.quality, day)
		assert.InDelta(t, InitialEaseFactor+tt.delta, s.EaseFactor, 1e-9)
	}
}

func TestCountersNeverDecrease(t *testing.T) {
	s := NewStats(day)
	seen, correct := 0, 0
	for _, q := range []int{2, 0, 3, 1, 0, 0, 2, 3} {
		s.Update(q, day)
		assert.Greater(t, s.TimesSeen, seen)
		assert.GreaterOrEqual(t, s.TimesCorrect, correct)
		assert.LessOrEqual(t, s.TimesCorrect, s.TimesSeen)
		assert.GreaterOrEqual(t, s.EaseFactor, MinEaseFactor)
		seen, correct = s.TimesSeen, s.TimesCorrect
	}
}

func TestUpdateRejectsOutOfRangeQuality(t *testing.T) {
	for _, q := range []int{-1, 4, 5} {
		s := NewStats(day)
		assert.Panics(t, func() { s.Update(q, day) })
	}
}

func TestAccuracy(t *testing.T) {
	s := NewStats(day)
	assert.Zero(t, s.Accuracy())
	s.Update(QualityGood, day)
	s.Update(QualityWrong, day)
	assert.InDelta(t, 0.5, s.Accuracy(), 1e-9)
}
