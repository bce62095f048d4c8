package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/exercise"
	"github.com/alexedmon1/french-flashcards/internal/history"
	"github.com/alexedmon1/french-flashcards/internal/session"
	"github.com/alexedmon1/french-flashcards/internal/srs"
	"github.com/alexedmon1/french-flashcards/internal/vocab"
)

var (
	sessionMaxItems int
	sessionMaxNew   int
	sessionCategory string
	sessionLevel    int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run today's practice session",
	Long: `Compose a balanced session from all due vocabulary, conjugation and
grammar items and work through it interactively. Progress is saved after
every answer, so quitting early (q) loses nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSources(cfg)
		if err != nil {
			return err
		}
		if sessionCategory != "" {
			src.cards = vocab.FilterByCategory(src.cards, sessionCategory)
		}
		if sessionLevel > 0 {
			for i := range src.topics {
				src.topics[i].Exercises = src.topics[i].ByLevel(sessionLevel)
			}
		}
		store, err := srs.NewStore(cfg.DataDir)
		if err != nil {
			return err
		}
		stats, err := loadStats(store)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pools, err := buildPools(src, stats, rng)
		if err != nil {
			return err
		}

		maxItems, maxNew := cfg.MaxItems, cfg.MaxNew
		if cmd.Flags().Changed("max-items") {
			maxItems = sessionMaxItems
		}
		if cmd.Flags().Changed("max-new") {
			maxNew = sessionMaxNew
		}

		today := time.Now()
		queue := session.Compose(pools, maxItems, maxNew, rng, today)
		if len(queue) == 0 {
			fmt.Println("✅ Nothing due today! Come back tomorrow.")
			return nil
		}

		fmt.Printf("🔥 %d items today. Answer, h for a hint, q to stop.\n", len(queue))

		runner := session.NewRunner(os.Stdin, os.Stdout, store, stats)
		summary, err := runner.Run(queue)
		if err != nil {
			return err
		}
		if summary.Total() == 0 {
			fmt.Println("Nothing answered; session not recorded.")
			return nil
		}

		streak := recordSession(summary, today)
		runner.PrintSummary(summary, streak)
		return nil
	},
}

// recordSession appends the session to the ledger and returns the updated
// streak. Ledger trouble only costs the streak display, never the session.
func recordSession(summary *session.Summary, today time.Time) int {
	ledger, err := history.Open(cfg.DataDir)
	if err != nil {
		fmt.Printf("⚠️  Could not open session history: %v\n", err)
		return 0
	}
	defer ledger.Close()

	tally := summary.PerDomain()
	err = ledger.Record(history.Session{
		Date:        today.Format(history.DateLayout),
		Total:       summary.Total(),
		Correct:     summary.Correct(),
		Accuracy:    summary.Accuracy(),
		DurationSec: int(summary.Elapsed.Seconds()),
		Vocabulary:  tally[exercise.Vocabulary][0],
		Conjugation: tally[exercise.Conjugation][0],
		Grammar:     tally[exercise.Grammar][0],
	})
	if err != nil {
		fmt.Printf("⚠️  Could not record session: %v\n", err)
		return 0
	}

	streak, err := ledger.Streak(today)
	if err != nil {
		return 0
	}
	return streak
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().IntVarP(&sessionMaxItems, "max-items", "n", session.DefaultMaxItems, "session size limit")
	sessionCmd.Flags().IntVar(&sessionMaxNew, "max-new", session.DefaultMaxNew, "new item limit per session")
	sessionCmd.Flags().StringVarP(&sessionCategory, "category", "c", "", "restrict vocabulary to one category")
	sessionCmd.Flags().IntVar(&sessionLevel, "level", 0, "restrict grammar exercises to one level")
}
