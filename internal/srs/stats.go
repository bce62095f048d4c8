// Package srs implements the simplified SM-2 scheduler shared by all three
// exercise domains: per-item review statistics, the quality-driven update
// rule, JSON persistence and the due-date predicate.
package srs

import (
	"fmt"
	"time"
)

// Quality ratings for a graded answer.
const (
	QualityWrong = 0
	QualityHard  = 1
	QualityGood  = 2
	QualityEasy  = 3
)

const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// DateLayout is the calendar-date format used in stats files. ISO dates
// compare correctly as strings, which the due check relies on.
const DateLayout = "2006-01-02"

// bootstrapIntervals maps quality to the fixed interval (in days) used on an
// item's first-ever correct review. After that, intervals grow by the ease
// multiplier.
var bootstrapIntervals = map[int]int{
	QualityHard: 1,
	QualityGood: 3,
	QualityEasy: 7,
}

// Stats tracks the review history of a single item. The item key is the map
// key in the stats file, not a field here.
type Stats struct {
	TimesSeen    int     `json:"times_seen"`
	TimesCorrect int     `json:"times_correct"`
	LastReviewed *string `json:"last_reviewed"`
	Interval     int     `json:"interval"`
	EaseFactor   float64 `json:"ease_factor"`
	DueDate      string  `json:"due_date"`
}

// NewStats returns stats for an item that has never been reviewed: due
// immediately, default ease.
func NewStats(today time.Time) *Stats {
	return &Stats{
		EaseFactor: InitialEaseFactor,
		DueDate:    today.Format(DateLayout),
	}
}

// Update applies one review result. quality must be in [0,3]; anything else
// is a caller bug, not a runtime condition.
func (s *Stats) Update(quality int, today time.Time) {
	if quality < QualityWrong || quality > QualityEasy {
		panic(fmt.Sprintf("srs: quality %d out of range [0,3]", quality))
	}

	s.TimesSeen++
	if quality > QualityWrong {
		s.TimesCorrect++
	}

	day := today.Format(DateLayout)
	s.LastReviewed = &day

	// EF' = EF + (0.1 - (3-q) * (0.08 + (3-q)*0.02)), floored at 1.3.
	q := float64(quality)
	ease := s.EaseFactor + (0.1 - (3-q)*(0.08+(3-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	s.EaseFactor = ease

	switch {
	case quality == QualityWrong:
		// Review again this same session.
		s.Interval = 0
	case s.TimesCorrect == 1:
		// First-ever correct review uses the fixed bootstrap table.
		// TimesCorrect never decreases, so this branch fires at most once
		// per item even after later failures.
		s.Interval = bootstrapIntervals[quality]
	default:
		s.Interval = int(float64(s.Interval) * s.EaseFactor)
	}

	s.DueDate = today.AddDate(0, 0, s.Interval).Format(DateLayout)
}

// Accuracy returns the correct/seen ratio, or 0 for an unseen item.
func (s *Stats) Accuracy() float64 {
	if s.TimesSeen == 0 {
		return 0
	}
	return float64(s.TimesCorrect) / float64(s.TimesSeen)
}
