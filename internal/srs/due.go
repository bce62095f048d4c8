package srs

import "time"

// IsDue reports whether the item behind stats is due on the given day. A nil
// stats entry means the item has never been reviewed, which counts as due.
func IsDue(s *Stats, today time.Time) bool {
	if s == nil {
		return true
	}
	return s.DueDate <= today.Format(DateLayout)
}

// Due filters keys down to those due today. The same predicate serves all
// three domains; only key enumeration differs.
func Due(keys []string, stats map[string]*Stats, today time.Time) []string {
	var due []string
	for _, key := range keys {
		if IsDue(stats[key], today) {
			due = append(due, key)
		}
	}
	return due
}

// Partition splits keys into the three session-priority tiers: overdue
// (missed their date), due today, and new (never reviewed). Keys not yet due
// are dropped.
func Partition(keys []string, stats map[string]*Stats, today time.Time) (overdue, dueToday, fresh []string) {
	day := today.Format(DateLayout)
	for _, key := range keys {
		s, ok := stats[key]
		switch {
		case !ok:
			fresh = append(fresh, key)
		case s.DueDate < day:
			overdue = append(overdue, key)
		case s.DueDate == day:
			dueToday = append(dueToday, key)
		}
	}
	return overdue, dueToday, fresh
}
