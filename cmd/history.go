package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice sessions and your streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := history.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer ledger.Close()

		sessions, err := ledger.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Run 'french-flashcards session' to start practicing.")
			return nil
		}

		streak, err := ledger.Streak(time.Now())
		if err != nil {
			return err
		}

		fmt.Println("📅 Recent Sessions")
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Date\tItems\tCorrect\tAccuracy\tTime\tVocab\tConj\tGrammar")
		fmt.Fprintln(w, "----\t-----\t-------\t--------\t----\t-----\t----\t-------")
		for _, sess := range sessions {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%d:%02d\t%d\t%d\t%d\n",
				sess.Date, sess.Total, sess.Correct, sess.Accuracy,
				sess.DurationSec/60, sess.DurationSec%60,
				sess.Vocabulary, sess.Conjugation, sess.Grammar)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n🔥 Streak: %d day(s)\n", streak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of sessions to show")
}
