package srs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store reads and writes the per-domain stats files inside a data directory.
// Each file is a flat JSON object mapping item key to its stats record.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (st *Store) Dir() string {
	return st.dir
}

// Load reads one domain's stats file. A missing or unparseable file yields an
// empty map: losing review history degrades scheduling but is never fatal for
// a personal tool. Records with missing fields get defaults (ease 2.5, due
// today).
func (st *Store) Load(name string) (map[string]*Stats, error) {
	data, err := os.ReadFile(filepath.Join(st.dir, name))
	if os.IsNotExist(err) {
		return map[string]*Stats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read stats file %s: %w", name, err)
	}

	var stats map[string]*Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return map[string]*Stats{}, nil
	}
	if stats == nil {
		return map[string]*Stats{}, nil
	}

	today := time.Now().Format(DateLayout)
	for _, s := range stats {
		if s.EaseFactor == 0 {
			s.EaseFactor = InitialEaseFactor
		}
		if s.DueDate == "" {
			s.DueDate = today
		}
	}
	return stats, nil
}

// Save rewrites one domain's stats file in full. Called after every graded
// answer, so a crash loses at most the current item's update.
func (st *Store) Save(name string, stats map[string]*Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode stats: %w", err)
	}
	path := filepath.Join(st.dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write stats file %s: %w", name, err)
	}
	return nil
}
