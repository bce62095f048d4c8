package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
	"github.com/alexedmon1/french-flashcards/internal/match"
	"github.com/alexedmon1/french-flashcards/internal/srs"
)

// stoppingPoint is when the session suggests wrapping up.
const stoppingPoint = 15 * time.Minute

var domainColors = map[exercise.Domain]*color.Color{
	exercise.Vocabulary:  color.New(color.FgCyan, color.Bold),
	exercise.Conjugation: color.New(color.FgMagenta, color.Bold),
	exercise.Grammar:     color.New(color.FgYellow, color.Bold),
}

var (
	correctColor = color.New(color.FgGreen, color.Bold)
	wrongColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
	noteColor    = color.New(color.FgYellow)
)

// Result is one graded exercise.
type Result struct {
	Exercise exercise.Exercise
	Correct  bool
	Quality  int
}

// Summary describes a finished (or quit) session.
type Summary struct {
	Results []Result
	Elapsed time.Duration
}

func (s *Summary) Total() int {
	return len(s.Results)
}

func (s *Summary) Correct() int {
	n := 0
	for _, r := range s.Results {
		if r.Correct {
			n++
		}
	}
	return n
}

func (s *Summary) Accuracy() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return float64(s.Correct()) / float64(len(s.Results)) * 100
}

// PerDomain tallies answered/correct per domain, over the fixed domain
// order.
func (s *Summary) PerDomain() map[exercise.Domain][2]int {
	tally := map[exercise.Domain][2]int{}
	for _, r := range s.Results {
		t := tally[r.Exercise.Domain()]
		t[0]++
		if r.Correct {
			t[1]++
		}
		tally[r.Exercise.Domain()] = t
	}
	return tally
}

func (s *Summary) Missed() []Result {
	var missed []Result
	for _, r := range s.Results {
		if !r.Correct {
			missed = append(missed, r)
		}
	}
	return missed
}

// Runner drives the interactive answer loop. It owns the in-memory stats
// maps and flushes the touched domain's file after every graded answer.
type Runner struct {
	in    *bufio.Reader
	out   io.Writer
	store *srs.Store
	stats map[exercise.Domain]map[string]*srs.Stats
	now   func() time.Time
}

func NewRunner(in io.Reader, out io.Writer, store *srs.Store, stats map[exercise.Domain]map[string]*srs.Stats) *Runner {
	return &Runner{
		in:    bufio.NewReader(in),
		out:   out,
		store: store,
		stats: stats,
		now:   time.Now,
	}
}

// Run works through the queue. Quitting early ('q' or EOF) is a clean stop:
// everything answered so far is already persisted and summarized.
func (r *Runner) Run(queue []exercise.Exercise) (*Summary, error) {
	start := r.now()
	summary := &Summary{}
	warned := false

	for i, ex := range queue {
		answer, quit := r.askAnswer(ex, i+1, len(queue))
		if quit {
			break
		}

		correct, ratio := grade(ex, answer)
		r.showFeedback(ex, correct)

		quality := r.askQuality(match.SuggestQuality(correct, ratio))
		if err := r.record(ex, quality, correct, summary); err != nil {
			fmt.Fprintf(r.out, "⚠️  Could not save progress: %v\n", err)
		}

		if elapsed := r.now().Sub(start); !warned && elapsed >= stoppingPoint {
			warned = true
			noteColor.Fprintln(r.out, "\n15 minutes reached. Good stopping point: press q to finish, or keep going.")
		}
	}

	summary.Elapsed = r.now().Sub(start)
	return summary, nil
}

// askAnswer shows the exercise and reads until it has a real answer,
// serving hints along the way. quit is true on 'q' or end of input.
func (r *Runner) askAnswer(ex exercise.Exercise, num, total int) (string, bool) {
	fmt.Fprintln(r.out)
	dimColor.Fprintf(r.out, "[%d/%d] ", num, total)
	domainColor(ex.Domain()).Fprintln(r.out, string(ex.Domain()))
	if v, ok := ex.(*exercise.Vocab); ok {
		dimColor.Fprintln(r.out, v.Direction.String())
	}
	fmt.Fprintln(r.out, ex.Prompt())

	for {
		fmt.Fprint(r.out, "Your answer (h for hint, q to quit): ")
		line, err := r.in.ReadString('\n')
		if err != nil && line == "" {
			return "", true
		}
		input := strings.TrimSpace(line)

		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit":
			return "", true
		case "h", "hint":
			if hint, ok := ex.Hint(); ok {
				dimColor.Fprintf(r.out, "Hint: %s\n", hint)
			} else {
				dimColor.Fprintln(r.out, "No hint available.")
			}
			continue
		}
		return match.Normalize(input), false
	}
}

func grade(ex exercise.Exercise, answer string) (bool, float64) {
	if scorer, ok := ex.(exercise.Scorer); ok {
		return scorer.Score(answer)
	}
	if ex.Check(answer) {
		return true, 1.0
	}
	return false, 0
}

func (r *Runner) showFeedback(ex exercise.Exercise, correct bool) {
	if correct {
		correctColor.Fprint(r.out, "✅ Correct! ")
		fmt.Fprintln(r.out, ex.CorrectAnswer())
	} else {
		wrongColor.Fprint(r.out, "❌ Incorrect. ")
		fmt.Fprintf(r.out, "Correct: %s\n", ex.CorrectAnswer())
	}
}

var qualityNames = [4]string{"Wrong", "Hard", "Good", "Easy"}

// askQuality reads the 0-3 rating, defaulting to the suggestion on Enter.
func (r *Runner) askQuality(suggested int) int {
	for {
		fmt.Fprintf(r.out, "Rate 0-3 (0 wrong, 1 hard, 2 good, 3 easy) or Enter for %s: ", qualityNames[suggested])
		line, err := r.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if input == "" {
			return suggested
		}
		if q, convErr := strconv.Atoi(input); convErr == nil && q >= srs.QualityWrong && q <= srs.QualityEasy {
			return q
		}
		if err != nil {
			return suggested
		}
		fmt.Fprintln(r.out, "Please enter 0, 1, 2 or 3, or press Enter.")
	}
}

// record updates the item's stats and rewrites its domain file.
func (r *Runner) record(ex exercise.Exercise, quality int, correct bool, summary *Summary) error {
	summary.Results = append(summary.Results, Result{Exercise: ex, Correct: correct, Quality: quality})

	stats := r.stats[ex.Domain()]
	if stats == nil {
		stats = map[string]*srs.Stats{}
		r.stats[ex.Domain()] = stats
	}
	s, ok := stats[ex.Key()]
	if !ok {
		s = srs.NewStats(r.now())
		stats[ex.Key()] = s
	}
	s.Update(quality, r.now())

	return r.store.Save(ex.Domain().StatsFile(), stats)
}

// PrintSummary writes the end-of-session report.
func (r *Runner) PrintSummary(summary *Summary, streak int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "🎉 Session complete!")
	minutes := int(summary.Elapsed.Minutes())
	seconds := int(summary.Elapsed.Seconds()) % 60
	fmt.Fprintf(r.out, "Time:      %d:%02d\n", minutes, seconds)
	fmt.Fprintf(r.out, "Reviewed:  %d items\n", summary.Total())
	fmt.Fprintf(r.out, "Correct:   %d/%d (%.0f%%)\n", summary.Correct(), summary.Total(), summary.Accuracy())

	tally := summary.PerDomain()
	for _, domain := range []exercise.Domain{exercise.Vocabulary, exercise.Conjugation, exercise.Grammar} {
		if t, ok := tally[domain]; ok {
			domainColor(domain).Fprintf(r.out, "%-12s", domain)
			fmt.Fprintf(r.out, " %d/%d\n", t[1], t[0])
		}
	}

	if streak > 0 {
		fmt.Fprintf(r.out, "Streak:    %d day(s)\n", streak)
	}

	if missed := summary.Missed(); len(missed) > 0 {
		wrongColor.Fprintln(r.out, "\nMissed items:")
		for _, m := range missed {
			fmt.Fprintf(r.out, "  %s: %s\n", m.Exercise.Domain(), m.Exercise.CorrectAnswer())
		}
	}
}

func domainColor(d exercise.Domain) *color.Color {
	if c, ok := domainColors[d]; ok {
		return c
	}
	return color.New(color.Bold)
}
