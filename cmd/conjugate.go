package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/conjugation"
)

var conjugateTense string

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <verb>",
	Short: "Show a verb's conjugation tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := conjugation.Load(cfg.VerbsPath())
		if err != nil {
			return err
		}
		verb := args[0]
		if _, ok := table.Verbs[verb]; !ok {
			return fmt.Errorf("unknown verb: %s", verb)
		}

		tenses := conjugation.AllTenses()
		if conjugateTense != "" {
			tenses = []string{conjugateTense}
		}

		fmt.Printf("%s (%s)\n", verb, table.Translation(verb))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, tense := range tenses {
			forms, err := table.Conjugate(verb, tense, conjugation.DisplayPronouns)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\n%s\t\n", conjugation.TenseDisplayName(tense))
			for i, pronoun := range conjugation.DisplayPronouns {
				fmt.Fprintf(w, "  %s\t%s\n", pronoun, forms[i])
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(conjugateCmd)
	conjugateCmd.Flags().StringVarP(&conjugateTense, "tense", "t", "", "single tense (present, future, imparfait, past, near_future, conditional, conditional_past)")
}
