package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// FadeTowards blends base toward target according to opacity. Terminals
// have no alpha channel, so an opacity of 1 keeps base, 0 lands on target,
// and values between mix the two in HCL space. Out-of-range opacities are
// treated as fully opaque or fully faded.
func FadeTowards(base, target lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return base
	}
	if opacity <= 0 {
		return target
	}

	c1 := toColorful(base)
	c2 := toColorful(target)
	return lipgloss.Color(c1.BlendHcl(c2, 1-opacity).Hex())
}

// toColorful converts a lipgloss hex color for blending. ANSI palette
// colors have no portable RGB value, so they fall back to a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
