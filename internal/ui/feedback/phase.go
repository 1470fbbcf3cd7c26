package feedback

import "time"

// Phase is the banner's lifecycle step. The quiz screen advances it on a
// timer: a reveal starts at PhaseSlideIn, settles into PhaseHold, then
// fades through PhaseSlideOut before the banner clears.
//
// PhaseHold is the zero value, so a bare State renders steady.
type Phase int

const (
	PhaseHold Phase = iota
	PhaseSlideIn
	PhaseSlideOut
	PhaseHidden
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHold:
		return "Hold"
	case PhaseSlideIn:
		return "SlideIn"
	case PhaseSlideOut:
		return "SlideOut"
	case PhaseHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Advance returns the phase following p and whether the banner is still
// visible in it. Once it reports false the banner is done and the caller
// stops scheduling ticks.
func Advance(p Phase) (Phase, bool) {
	switch p {
	case PhaseSlideIn:
		return PhaseHold, true
	case PhaseHold:
		return PhaseSlideOut, true
	default:
		return PhaseHidden, false
	}
}

// Duration returns how long the banner stays in p before the next
// Advance. Zero for PhaseHidden: there is nothing left to schedule.
func Duration(p Phase) time.Duration {
	switch p {
	case PhaseSlideIn, PhaseSlideOut:
		return 150 * time.Millisecond
	case PhaseHold:
		return 1600 * time.Millisecond
	default:
		return 0
	}
}

// phaseOpacity maps the phase to the foreground blend used by Render.
// The slide phases dim the banner toward the background.
func phaseOpacity(p Phase) float64 {
	switch p {
	case PhaseSlideIn, PhaseSlideOut:
		return 0.55
	default:
		return 1
	}
}
