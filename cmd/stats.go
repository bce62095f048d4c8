package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics per domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSources(cfg)
		if err != nil {
			return err
		}
		store, err := srs.NewStore(cfg.DataDir)
		if err != nil {
			return err
		}
		stats, err := loadStats(store)
		if err != nil {
			return err
		}

		fmt.Println("📊 Statistics")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Domain\tItems\tTracked\tAccuracy\tLearning\tMastered")
		fmt.Fprintln(w, "------\t-----\t-------\t--------\t--------\t--------")
		for _, domain := range allDomains {
			items := len(src.keys(domain))
			tracked, seen, correct := 0, 0, 0
			learning, mastered := 0, 0
			for _, s := range stats[domain] {
				tracked++
				seen += s.TimesSeen
				correct += s.TimesCorrect
				// Same thresholds whatever the domain: under a week of
				// spacing is still learning, over a month is mastered.
				if s.Interval < 7 {
					learning++
				} else if s.Interval > 30 {
					mastered++
				}
			}
			accuracy := "-"
			if seen > 0 {
				accuracy = fmt.Sprintf("%.0f%%", float64(correct)/float64(seen)*100)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\n",
				domain, items, tracked, accuracy, learning, mastered)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
