// Package history keeps the session ledger: one row per completed practice
// session, from which the daily streak is derived.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DateLayout matches the stats files' calendar-date format.
const DateLayout = "2006-01-02"

// Session is one completed practice session.
type Session struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	Accuracy    float64 `json:"accuracy"`
	DurationSec int     `json:"duration_seconds"`
	Vocabulary  int     `json:"vocabulary"`
	Conjugation int     `json:"conjugation"`
	Grammar     int     `json:"grammar"`
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the session ledger inside the data directory.
func Open(dir string) (*Store, error) {
	db, err := sql.Open("sqlite3", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("cannot open history database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		total INTEGER NOT NULL,
		correct INTEGER NOT NULL,
		accuracy REAL NOT NULL,
		duration_seconds INTEGER NOT NULL,
		vocabulary INTEGER NOT NULL DEFAULT 0,
		conjugation INTEGER NOT NULL DEFAULT 0,
		grammar INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("cannot initialize history schema: %w", err)
	}
	return nil
}

// Record appends one session row.
func (s *Store) Record(sess Session) error {
	query := `
	INSERT INTO sessions (date, total, correct, accuracy, duration_seconds, vocabulary, conjugation, grammar)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query, sess.Date, sess.Total, sess.Correct, sess.Accuracy,
		sess.DurationSec, sess.Vocabulary, sess.Conjugation, sess.Grammar)
	if err != nil {
		return fmt.Errorf("cannot record session: %w", err)
	}
	return nil
}

// Recent returns the latest sessions, newest first.
func (s *Store) Recent(limit int) ([]Session, error) {
	query := `
	SELECT id, date, total, correct, accuracy, duration_seconds, vocabulary, conjugation, grammar
	FROM sessions ORDER BY id DESC LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Date, &sess.Total, &sess.Correct, &sess.Accuracy,
			&sess.DurationSec, &sess.Vocabulary, &sess.Conjugation, &sess.Grammar); err != nil {
			return nil, fmt.Errorf("cannot scan session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Streak counts consecutive practice days ending today or yesterday. A gap
// of more than one day before today breaks it.
func (s *Store) Streak(today time.Time) (int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT date FROM sessions ORDER BY date DESC`)
	if err != nil {
		return 0, fmt.Errorf("cannot query session dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("cannot scan session date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	day := today.Format(DateLayout)
	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
	if dates[0] != day && dates[0] != yesterday {
		return 0, nil
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		prev, err := time.Parse(DateLayout, dates[i-1])
		if err != nil {
			break
		}
		if dates[i] != prev.AddDate(0, 0, -1).Format(DateLayout) {
			break
		}
		streak++
	}
	return streak, nil
}
