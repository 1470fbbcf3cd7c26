// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 1

	// MinBarCells is the narrowest bar worth drawing; below it the progress
	// indicator falls back to a bare counter.
	MinBarCells = 3

	// MinTitleBarWidth is the width below which the title bar renders nothing.
	MinTitleBarWidth = 20
)
