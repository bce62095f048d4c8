package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/grammar"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List grammar topics and their exercise counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := grammar.LoadDir(cfg.GrammarPath())
		if err != nil {
			return err
		}
		if len(topics) == 0 {
			fmt.Println("No grammar topics found. Add topic files to", cfg.GrammarPath())
			return nil
		}

		fmt.Println("📖 Grammar Topics")
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Topic\tExercises\tLevels")
		fmt.Fprintln(w, "-----\t---------\t------")
		total := 0
		for _, topic := range topics {
			counts := topic.LevelCounts()
			levels := make([]int, 0, len(counts))
			for level := range counts {
				levels = append(levels, level)
			}
			sort.Ints(levels)
			breakdown := ""
			for i, level := range levels {
				if i > 0 {
					breakdown += ", "
				}
				breakdown += fmt.Sprintf("L%d: %d", level, counts[level])
			}
			title := topic.Title
			if title == "" {
				title = topic.Name
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", title, len(topic.Exercises), breakdown)
			total += len(topic.Exercises)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nTotal: %d exercises across %d topics\n", total, len(topics))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
