// Package carousel renders question cards as horizontally sliding pages.
// The card frame tracks the page offset at full speed while a dim backdrop
// layer trails behind it, which is what sells the depth effect; card
// content fades with distance from center.
package carousel

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui/layout"
	"github.com/osmandemiroz/cram/internal/ui/optioncard"
	"github.com/osmandemiroz/cram/internal/ui/overlay"
	"github.com/osmandemiroz/cram/internal/ui/parallax"
	"github.com/osmandemiroz/cram/internal/ui/render"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// frameSpeed is the card layer's movement multiplier. The frame tracks the
// page offset exactly; only the backdrop runs slower.
const frameSpeed = 1.0

// Card is one question rendered as a carousel page.
type Card struct {
	Prompt   string
	Options  []string
	Selected int // option index, -1 when nothing is picked
	Correct  int
	Revealed bool
}

// Params configures the motion layers.
type Params struct {
	BackdropSpeed float64 // backdrop layer multiplier, below 1 so it trails the cards
	ScaleSpeed    float64 // frame growth at center; 0 keeps cards flat
	Fade          bool    // fade card content with distance from center
}

// State is everything the carousel needs for one frame.
type State struct {
	Cards     []Card
	Offset    float64 // fractional page position from the slide animation
	CardWidth int     // settled card width; the frame scales from this
	Params    Params
}

// Render draws the backdrop and every card within one page of the current
// offset onto a width x height canvas. Cards render far to near so the
// centered card wins overlaps during a slide.
func Render(s State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := strings.Join(make([]string, height), "\n")

	if height >= 3 {
		canvas = overlay.Compose(canvas, "\n"+renderBackdrop(s, width), width, height)
	}

	type vis struct {
		index int
		dist  float64
	}
	var visible []vis
	for i := range s.Cards {
		d := math.Abs(parallax.Distance(s.Offset, i))
		if d < 1 {
			visible = append(visible, vis{i, d})
		}
	}
	sort.Slice(visible, func(a, b int) bool { return visible[a].dist > visible[b].dist })

	for _, v := range visible {
		canvas = overlay.Compose(canvas, renderCard(s, v.index, width, height), width, height)
	}
	return canvas
}

// renderBackdrop draws one bullet cluster per page at the slower layer
// speed. It always fades so clusters die out past the neighbor page.
func renderBackdrop(s State, width int) string {
	b := icons.Bullet()
	cluster := b + " " + b + " " + b
	clusterW := lipgloss.Width(cluster)

	t := styles.T()
	line := ""
	for i := range s.Cards {
		bd := parallax.Compute(s.Offset, i, float64(width), parallax.Params{
			Speed: s.Params.BackdropSpeed,
			Fade:  true,
		})
		if bd.Opacity == 0 {
			continue
		}
		col := width/2 + layout.OffsetColumns(bd.HorizontalOffset) - clusterW/2
		styled := lipgloss.NewStyle().
			Foreground(styles.FadeTowards(t.FgSubtle, t.BgBase, bd.Opacity)).
			Render(cluster)
		line = overlay.Compose(line, placeLine(styled, col, width), width, 1)
	}
	return line
}

func renderCard(s State, i, width, height int) string {
	p := s.Params
	fr := parallax.ComputeScale(s.Offset, i, float64(width), parallax.ScaleParams{
		Speed:      frameSpeed,
		ScaleSpeed: p.ScaleSpeed,
	})
	tx := parallax.Compute(s.Offset, i, float64(width), parallax.Params{
		Speed: frameSpeed,
		Fade:  p.Fade,
	})

	w := min(layout.ScaledWidth(s.CardWidth, fr.Scale), width-2)
	innerW := max(w-4, 1)

	t := styles.T()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.FadeTowards(t.Border, t.BgBase, tx.Opacity)).
		Padding(0, 1).
		Width(w - 2).
		Render(renderInterior(s.Cards[i], innerW, tx.Opacity))

	lines := strings.Split(box, "\n")
	col := width/2 + layout.OffsetColumns(fr.HorizontalOffset) - w/2
	top := max((height-len(lines))/2, 0)

	placed := make([]string, 0, top+len(lines))
	for range top {
		placed = append(placed, "")
	}
	for _, line := range lines {
		placed = append(placed, placeLine(line, col, width))
	}
	return strings.Join(placed, "\n")
}

func renderInterior(c Card, innerW int, opacity float64) string {
	t := styles.T()
	promptStyle := lipgloss.NewStyle().
		Foreground(styles.FadeTowards(t.FgBase, t.BgBase, opacity)).
		Bold(true).
		Width(innerW)
	prompt := promptStyle.Render(render.Sanitize(c.Prompt))

	rows := make([]string, 0, len(c.Options))
	for j, opt := range c.Options {
		st := optioncard.Classify(j == c.Selected, j == c.Correct, c.Revealed)
		rows = append(rows, optioncard.Render(opt, j, st, innerW, opacity))
	}
	return prompt + "\n\n" + strings.Join(rows, "\n")
}

// placeLine positions a card line at col on the canvas, clipping whatever
// slides past either edge.
func placeLine(line string, col, width int) string {
	lw := ansi.StringWidth(ansi.Strip(line))
	if col < 0 {
		if -col >= lw {
			return ""
		}
		return ansi.Cut(line, -col, lw)
	}
	if col >= width {
		return ""
	}
	if col+lw > width {
		line = ansi.Cut(line, 0, width-col)
	}
	return strings.Repeat(" ", col) + line
}
