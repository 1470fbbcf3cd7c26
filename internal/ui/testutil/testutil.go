// Package testutil holds the assertion helpers the widget tests share:
// ANSI stripping, display-width measurement, and line lookup in rendered
// output.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape sequences so tests can compare rendered
// output as plain text.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// MeasureWidth returns the display width of s with escapes stripped,
// counting wide characters by their terminal columns.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
