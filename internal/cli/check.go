package cli

import (
	"github.com/spf13/cobra"

	"github.com/osmandemiroz/cram/internal/deck"
)

// newCheckCmd validates a single deck file. Load runs the same validation
// the picker uses, so a deck that checks clean here will show up there.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a deck file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("OK: %s (%d questions)\n", d.Title, len(d.Questions))
			return nil
		},
	}
}
