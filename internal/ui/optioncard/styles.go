package optioncard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// stateStyle maps a visual state to its style, faded towards the panel
// background so off-center cards recede with the parallax opacity.
func stateStyle(st State, opacity float64) lipgloss.Style {
	t := styles.T()

	var fg lipgloss.Color
	bold := false
	switch st {
	case StateSelected:
		fg = t.Primary
		bold = true
	case StateRevealedCorrect:
		fg = t.Success
		bold = true
	case StateRevealedWrong:
		fg = t.Error
	default:
		fg = t.FgBase
	}

	return lipgloss.NewStyle().
		Foreground(styles.FadeTowards(fg, t.BgBase, opacity)).
		Bold(bold)
}
