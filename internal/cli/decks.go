package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/osmandemiroz/cram/internal/deck"
)

// newDecksCmd lists every playable deck: the embedded starter plus decks
// discovered in the data dir, configured dirs, and the working directory.
func newDecksCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List discovered quiz decks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			decks := deck.All(cfg.DeckDirs)
			loggerFromContext(cmd.Context()).Debug("decks loaded", "count", len(decks))

			cmd.Println(decksTable(decks))
			return nil
		},
	}
}

func decksTable(decks []*deck.Deck) string {
	headerStyle := lipgloss.NewStyle().Bold(true)

	rows := make([][]string, 0, len(decks))
	for _, d := range decks {
		rows = append(rows, []string{d.Title, strconv.Itoa(len(d.Questions)), deckSize(d), deckOrigin(d)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Deck", "Questions", "Size", "Path").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

func deckSize(d *deck.Deck) string {
	if d.Path == "" {
		return "-"
	}
	return humanize.IBytes(uint64(d.Size)) //nolint:gosec // sizes come from os.Stat
}

func deckOrigin(d *deck.Deck) string {
	if d.Path == "" {
		return "builtin"
	}
	return d.Path
}
