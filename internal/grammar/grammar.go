// Package grammar loads fill-in-the-blank topic files and builds grammar
// exercises. Each topic is one JSON document; the topic name is the file
// stem.
package grammar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
)

// Item is one fill-in-the-blank exercise inside a topic.
type Item struct {
	ID             json.Number `json:"id"`
	Level          int         `json:"level"`
	SentenceBefore string      `json:"sentence_before"`
	SentenceAfter  string      `json:"sentence_after"`
	Answer         string      `json:"answer"`
	Alternatives   []string    `json:"alternatives"`
	Hint           string      `json:"hint"`
	Explanation    string      `json:"explanation"`
	Context        string      `json:"context,omitempty"`
	Translation    string      `json:"translation,omitempty"`
}

// Topic is one grammar topic document. Name is the file stem, used in SRS
// keys; Title is the display name stored in the document itself.
type Topic struct {
	Name        string            `json:"-"`
	Title       string            `json:"topic"`
	Description string            `json:"description"`
	Levels      map[string]string `json:"levels"`
	Exercises   []Item            `json:"exercises"`
}

// Key returns the SRS key of an item within this topic.
func (t Topic) Key(item Item) string {
	return t.Name + "|" + item.ID.String()
}

// LoadTopic reads a single topic file.
func LoadTopic(path string) (Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Topic{}, fmt.Errorf("cannot read grammar topic %s: %w", path, err)
	}
	var topic Topic
	if err := json.Unmarshal(data, &topic); err != nil {
		return Topic{}, fmt.Errorf("cannot parse grammar topic %s: %w", path, err)
	}
	topic.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return topic, nil
}

// LoadDir reads every *.json topic in a directory, sorted by file name. A
// missing directory is an empty pool, not an error.
func LoadDir(dir string) ([]Topic, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar directory %s: %w", dir, err)
	}

	var topics []Topic
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		topic, err := LoadTopic(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// ByLevel filters a topic's items to one difficulty level.
func (t Topic) ByLevel(level int) []Item {
	var items []Item
	for _, item := range t.Exercises {
		if item.Level == level {
			items = append(items, item)
		}
	}
	return items
}

// LevelCounts tallies exercises per level.
func (t Topic) LevelCounts() map[int]int {
	counts := map[int]int{}
	for _, item := range t.Exercises {
		counts[item.Level]++
	}
	return counts
}

// Keys enumerates the SRS keys across all topics.
func Keys(topics []Topic) []string {
	var keys []string
	for _, topic := range topics {
		for _, item := range topic.Exercises {
			keys = append(keys, topic.Key(item))
		}
	}
	return keys
}

// Exercises builds one fill-in exercise per item across all topics.
func Exercises(topics []Topic) []exercise.Exercise {
	var exercises []exercise.Exercise
	for _, topic := range topics {
		for _, item := range topic.Exercises {
			exercises = append(exercises, &exercise.Fill{
				TopicName:      topic.Name,
				SentenceBefore: item.SentenceBefore,
				SentenceAfter:  item.SentenceAfter,
				Answer:         item.Answer,
				Alternatives:   item.Alternatives,
				HintText:       item.Hint,
				Explanation:    item.Explanation,
				Context:        item.Context,
				Translation:    item.Translation,
				ItemKey:        topic.Key(item),
			})
		}
	}
	return exercises
}
