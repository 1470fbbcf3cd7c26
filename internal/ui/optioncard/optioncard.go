package optioncard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui/render"
)

// Render draws one answer option as a single row with a marker column on
// the left and a result column on the right.
// Format: ❯ B  Some option text              ✓
func Render(text string, index int, st State, width int, opacity float64) string {
	// Marker column: shown for the current pick before the reveal.
	prefix := "  "
	if st == StateSelected {
		prefix = icons.Marker() + " "
	}

	// Result column: outcome icon once revealed.
	suffix := "  "
	switch st {
	case StateRevealedCorrect:
		suffix = " " + icons.Check()
	case StateRevealedWrong:
		suffix = " " + icons.Cross()
	}

	label := string(rune('A'+index)) + "  "

	textWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(label)-lipgloss.Width(suffix), 1)
	body := render.TruncateAndPadEllipsis(render.Sanitize(text), textWidth)

	return stateStyle(st, opacity).Render(prefix + label + body + suffix)
}
