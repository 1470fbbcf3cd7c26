// Package layout provides pure functions for UI dimension calculations.
package layout

import "math"

// NarrowThreshold is the terminal width below which the quiz switches to
// narrow mode. In narrow mode the side cards are dropped and the centered
// card takes the full width.
const NarrowThreshold = 70

// MinCardWidth is the smallest width a question card is rendered at.
const MinCardWidth = 24

// MaxCardWidth caps the centered card so prompts stay readable on wide
// terminals.
const MaxCardWidth = 60

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	TitleBarHeight    int
	ProgressBarHeight int
	FeedbackHeight    int // 0 when no banner is shown
}

// ContentHeight calculates the available height for the carousel area.
// This is the terminal height minus title bar, progress bar, and the
// feedback banner.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.TitleBarHeight
	height -= opts.ProgressBarHeight
	height -= opts.FeedbackHeight
	return height
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// CardWidth calculates the width of the centered question card.
// In narrow mode the card takes the window minus a small margin; otherwise
// it takes half the window, bounded to keep prompts readable.
func CardWidth(windowWidth int) int {
	if IsNarrowMode(windowWidth) {
		return max(windowWidth-4, MinCardWidth)
	}
	return min(max(windowWidth/2, MinCardWidth), MaxCardWidth)
}

// ScaledWidth converts a card width and a parallax scale factor into the
// rendered width, never below one cell.
func ScaledWidth(cardWidth int, scale float64) int {
	return max(int(math.Round(float64(cardWidth)*scale)), 1)
}

// OffsetColumns converts a fractional horizontal offset into whole terminal
// columns.
func OffsetColumns(offset float64) int {
	return int(math.Round(offset))
}
