package titlebar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui"
	"github.com/osmandemiroz/cram/internal/ui/render"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// Height is the fixed height of the title bar (single line).
const Height = 1

// State describes what the bar shows.
type State struct {
	Title   string
	Current int // zero-based question index, rendered one-based
	Total   int
	Score   int
	Sound   bool
}

func counterStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func scoreStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.T().Primary).
		Bold(true)
}

// Render returns the title bar line for the given width: gradient deck
// title on the left, question counter and running score on the right.
// The title gives way first when the terminal is narrow.
func Render(s State, width int) string {
	if width < ui.MinTitleBarWidth {
		return ""
	}

	right := renderRight(s)

	avail := width - lipgloss.Width(right) - 2
	if avail < 8 {
		right = ""
		avail = width
	}

	t := styles.T()
	title := render.TruncateEllipsis(render.Sanitize(s.Title), avail)
	left := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)

	return render.Row(left, right, width)
}

func renderRight(s State) string {
	counter := counterStyle().Render(fmt.Sprintf("Question %d/%d", s.Current+1, s.Total))
	score := scoreStyle().Render(fmt.Sprintf("Score %d", s.Score))

	out := counter + counterStyle().Render(" · ") + score
	if !s.Sound {
		out += " " + styles.T().S().Muted.Render(icons.SoundOff())
	}
	return out
}
