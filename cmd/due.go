package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/session"
	"github.com/alexedmon1/french-flashcards/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show how many items are due per domain",
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

		today := time.Now()
		total := 0

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Domain\tOverdue\tToday\tNew\tTotal")
		fmt.Fprintln(w, "------\t-------\t-----\t---\t-----")
		for _, domain := range allDomains {
			counts := session.CountDue(src.keys(domain), stats[domain], today)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				domain, counts.Overdue, counts.Today, counts.New, counts.Total())
			total += counts.Total()
		}
		w.Flush()

		if total == 0 {
			fmt.Println("\n✅ Nothing due today! Good job.")
			return nil
		}
		size := total
		if size > cfg.MaxItems {
			size = cfg.MaxItems
		}
		// ~45 seconds per item.
		fmt.Printf("\n🔥 %d due. Next session: %d items (~%d min).\n", total, size, (size*45+59)/60)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
