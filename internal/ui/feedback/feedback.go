// Package feedback renders the verdict banner shown under the card after
// an answer is submitted.
package feedback

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui/render"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// BannerHeight is the vertical space the banner occupies when visible:
// a separating blank line plus the message line.
const BannerHeight = 2

// Kind classifies the verdict being shown.
type Kind int

const (
	KindNone Kind = iota
	KindCorrect
	KindWrong
	KindSkipped
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindCorrect:
		return "Correct"
	case KindWrong:
		return "Wrong"
	case KindSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// State describes the banner for the current question.
type State struct {
	Kind   Kind
	Phase  Phase
	Answer string // correct option text, shown for wrong and skipped verdicts
	Streak int    // current run of correct answers
}

// Height returns the vertical space the banner needs.
func Height(s State) int {
	if s.Kind == KindNone || s.Phase == PhaseHidden {
		return 0
	}
	return BannerHeight
}

func correctStyle(opacity float64) lipgloss.Style {
	t := styles.T()
	return lipgloss.NewStyle().
		Foreground(styles.FadeTowards(t.Success, t.BgBase, opacity)).
		Bold(true)
}

func wrongStyle(opacity float64) lipgloss.Style {
	t := styles.T()
	return lipgloss.NewStyle().
		Foreground(styles.FadeTowards(t.Error, t.BgBase, opacity))
}

func skippedStyle(opacity float64) lipgloss.Style {
	t := styles.T()
	return lipgloss.NewStyle().
		Foreground(styles.FadeTowards(t.Warning, t.BgBase, opacity))
}

// Render renders the banner centered in width. The slide phases render
// dimmed so the banner eases in and out without moving.
// Returns empty string when there is nothing to show.
func Render(s State, width int) string {
	if s.Kind == KindNone || s.Phase == PhaseHidden {
		return ""
	}
	op := phaseOpacity(s.Phase)

	var msg string
	var style lipgloss.Style
	switch s.Kind {
	case KindCorrect:
		msg = icons.Check() + " Correct!"
		if s.Streak >= 2 {
			msg = fmt.Sprintf("%s · %s%d in a row", msg, icons.Flame(), s.Streak)
		}
		style = correctStyle(op)
	case KindWrong:
		msg = fmt.Sprintf("%s Wrong · answer: %s", icons.Cross(), render.Sanitize(s.Answer))
		style = wrongStyle(op)
	case KindSkipped:
		msg = fmt.Sprintf("%s Skipped · answer: %s", icons.Skipped(), render.Sanitize(s.Answer))
		style = skippedStyle(op)
	default:
		return ""
	}

	msg = render.TruncateEllipsis(msg, max(width-2, 1))
	return "\n" + render.Center(style.Render(msg), width)
}
