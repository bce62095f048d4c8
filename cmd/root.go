package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexedmon1/french-flashcards/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "french-flashcards",
	Short: "Daily French practice with spaced repetition",
	Long: `French-flashcards drills vocabulary, verb conjugation and grammar
in one daily session, scheduled with a simplified SM-2 algorithm.

Source data (vocabulary CSV, verb table, grammar topics) lives in the
data directory; review statistics are kept alongside it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.french-flashcards.yaml)")
}
