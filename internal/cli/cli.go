// Package cli implements the cram command-line interface.
//
// The root command starts the quiz TUI; subcommands inspect deck files
// without entering the interface. All commands support --verbose (-v) for
// debug-level logging. Log output goes to a file under the XDG state
// directory because stderr belongs to the TUI while it runs.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the cram CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		noSound    bool
		deckPath   string
	)

	root := &cobra.Command{
		Use:          "cram",
		Short:        "cram is a terminal quiz trainer",
		Long:         "cram runs multiple-choice quiz decks in the terminal, with a parallax card carousel, feedback chimes, and a results report.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logSink(), level)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), configPath, deckPath, noSound)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")
	root.PersistentFlags().BoolVar(&noSound, "no-sound", false, "disable feedback chimes")
	root.Flags().StringVar(&deckPath, "deck", "", "play a deck file directly, skipping the picker")

	root.AddCommand(newDecksCmd(&configPath))
	root.AddCommand(newCheckCmd())

	return root.ExecuteContext(ctx)
}
