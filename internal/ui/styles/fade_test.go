package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFadeTowards(t *testing.T) {
	base := lipgloss.Color("#c0c0c0")
	target := lipgloss.Color("#1a1a1a")

	tests := []struct {
		name    string
		opacity float64
		want    lipgloss.Color // empty means "between the two"
	}{
		{"fully opaque keeps base", 1, base},
		{"above one keeps base", 1.5, base},
		{"fully faded lands on target", 0, target},
		{"below zero lands on target", -0.5, target},
		{"half blends between", 0.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FadeTowards(base, target, tt.opacity)
			if tt.want != "" {
				if got != tt.want {
					t.Errorf("FadeTowards(%v) = %q, want %q", tt.opacity, got, tt.want)
				}
				return
			}
			if got == base || got == target {
				t.Errorf("FadeTowards(%v) = %q, want a blend of %q and %q", tt.opacity, got, base, target)
			}
			if len(got) != 7 || got[0] != '#' {
				t.Errorf("FadeTowards(%v) = %q, want a hex color", tt.opacity, got)
			}
		})
	}
}

func TestFadeTowardsMonotonic(t *testing.T) {
	// Higher opacity must stay closer to base: the blend of a gray ramp
	// is itself a gray ramp, so channel values decrease monotonically.
	base := lipgloss.Color("#ffffff")
	target := lipgloss.Color("#000000")

	prev := ""
	for _, op := range []float64{1, 0.75, 0.5, 0.25, 0} {
		got := string(FadeTowards(base, target, op))
		if prev != "" && got > prev {
			t.Errorf("FadeTowards(%v) = %q, brighter than previous %q", op, got, prev)
		}
		prev = got
	}
}
