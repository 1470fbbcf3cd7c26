// Package progressbar renders the quiz position indicator shown below the
// title bar. The fill ratio tracks how far into the deck the player is.
package progressbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// Ratio returns the completed fraction of a quiz positioned on question
// current (0-based) out of total. An empty deck has ratio 0, never NaN.
func Ratio(current, total int) float64 {
	if total == 0 {
		return 0
	}
	ratio := float64(current+1) / float64(total)
	return min(max(ratio, 0), 1)
}

// Render draws a block-style progress bar with a question counter.
// Format: ▓▓▓▓░░░░░░  3/10
func Render(current, total, width int) string {
	counter := fmt.Sprintf("%d/%d", min(current+1, total), total)

	// Bar plus a two-space gap before the counter.
	barWidth := width - lipgloss.Width(counter) - 2

	if barWidth < ui.MinBarCells {
		// Too narrow for a bar, just show the counter
		return styles.T().S().Muted.Render(counter)
	}

	filled := min(int(float64(barWidth)*Ratio(current, total)), barWidth)

	t := styles.T()
	bar := lipgloss.NewStyle().Foreground(t.Primary).
		Render(strings.Repeat(icons.ProgressFilled(), filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).
			Render(strings.Repeat(icons.ProgressEmpty(), barWidth-filled))

	return bar + "  " + t.S().Muted.Render(counter)
}
