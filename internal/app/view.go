package app

import (
	"strings"

	"github.com/osmandemiroz/cram/internal/session"
	"github.com/osmandemiroz/cram/internal/ui/carousel"
	"github.com/osmandemiroz/cram/internal/ui/feedback"
	"github.com/osmandemiroz/cram/internal/ui/progressbar"
	"github.com/osmandemiroz/cram/internal/ui/titlebar"
)

// Settled card width bounds. The carousel scales outward from this, so the
// widest frame stays inside the canvas on common terminal sizes.
const (
	maxCardWidth = 52
	minCardWidth = 24
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var view string
	switch m.screen {
	case ScreenPicker:
		view = m.picker.View()
	case ScreenQuiz:
		view = m.quizView()
	case ScreenReport:
		view = m.report.View()
	}

	view = m.Popups.RenderOverlay(view)
	return enforceHeight(view, m.Height)
}

func (m Model) quizView() string {
	if m.session == nil {
		return ""
	}

	bar := titlebar.Render(titlebar.State{
		Title:   m.session.Title(),
		Current: m.session.CurrentIndex(),
		Total:   m.session.Total(),
		Score:   m.session.Score(),
		Sound:   m.sound.Enabled(),
	}, m.Width)

	canvasHeight := max(m.Height-titlebar.Height-feedback.BannerHeight-1, 3)
	canvas := carousel.Render(m.carouselState(), m.Width, canvasHeight)

	// The banner zone keeps its two lines when idle so the progress bar
	// does not jump while feedback slides in and out.
	zone := "\n"
	if feedback.Height(m.banner) > 0 {
		zone = feedback.Render(m.banner, m.Width)
	}

	progress := progressbar.Render(m.session.CurrentIndex(), m.session.Total(), m.Width)

	return strings.Join([]string{bar, canvas, zone, progress}, "\n")
}

func (m Model) carouselState() carousel.State {
	p := m.cfg.GetParallaxConfig()
	return carousel.State{
		Cards:     m.cards(),
		Offset:    m.slide.Offset(),
		CardWidth: cardWidthFor(m.Width),
		Params: carousel.Params{
			BackdropSpeed: p.Speed,
			ScaleSpeed:    p.ScaleSpeed,
			Fade:          p.Fade,
		},
	}
}

func cardWidthFor(width int) int {
	return max(min(maxCardWidth, width-8), minCardWidth)
}

// cards projects the session onto carousel cards. Resolved questions stay
// revealed so their outcome remains visible while sliding away.
func (m Model) cards() []carousel.Card {
	cards := make([]carousel.Card, m.session.Total())
	for i := range cards {
		q, _ := m.session.QuestionAt(i)
		cards[i] = carousel.Card{
			Prompt:   q.Prompt,
			Options:  q.Options,
			Selected: -1,
			Correct:  q.Answer,
		}
		if r, ok := m.session.ResultAt(i); ok && r.Outcome != session.Unanswered {
			cards[i].Selected = r.Chosen
			cards[i].Revealed = true
		}
	}

	cur := m.session.CurrentIndex()
	cards[cur].Selected = m.session.Selected()
	cards[cur].Revealed = m.session.Revealed()
	return cards
}

// enforceHeight pads or trims view to exactly height lines so the
// terminal never scrolls.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == height {
		return view
	}

	if len(lines) < height {
		for len(lines) < height {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
