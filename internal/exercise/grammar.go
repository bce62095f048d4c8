package exercise

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexedmon1/french-flashcards/internal/match"
)

var topicTitle = cases.Title(language.English)

// Fill is a fill-in-the-blank grammar exercise with a canonical answer and
// author-supplied alternatives and hint.
type Fill struct {
	TopicName      string
	SentenceBefore string
	SentenceAfter  string
	Answer         string
	Alternatives   []string
	HintText       string
	Explanation    string
	Context        string
	Translation    string
	ItemKey        string
}

func (f *Fill) Key() string    { return f.ItemKey }
func (f *Fill) Domain() Domain { return Grammar }

func (f *Fill) Prompt() string {
	topic := topicTitle.String(strings.ReplaceAll(f.TopicName, "_", " "))
	prompt := strings.TrimSpace(fmt.Sprintf("%s\n%s __________ %s", topic, f.SentenceBefore, f.SentenceAfter))
	if f.Context != "" {
		prompt += fmt.Sprintf("\n(%s)", f.Context)
	}
	if f.Translation != "" && f.Translation != f.Context {
		prompt += "\n" + f.Translation
	}
	return prompt
}

func (f *Fill) CorrectAnswer() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", f.SentenceBefore, f.Answer, f.SentenceAfter))
}

func (f *Fill) Check(input string) bool {
	variants := append([]string{f.Answer}, f.Alternatives...)
	return match.Check(input, variants, match.ModeExact)
}

func (f *Fill) Hint() (string, bool) {
	return f.HintText, f.HintText != ""
}
