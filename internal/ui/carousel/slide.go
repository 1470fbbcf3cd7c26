package carousel

import "math"

// StepSize is how far the page offset moves per animation tick, in pages.
// A full transition takes 1/StepSize ticks.
const StepSize = 0.2

// Slide animates the fractional page offset toward a target index at a
// constant rate. Hold by value; mutate through the pointer methods.
type Slide struct {
	offset float64
	target float64
}

// NewSlide returns a slide resting at page zero.
func NewSlide() Slide {
	return Slide{}
}

// Offset returns the current fractional page position.
func (s Slide) Offset() float64 {
	return s.offset
}

// Target returns the page index the slide is moving toward.
func (s Slide) Target() int {
	return int(s.target)
}

// Settled reports whether the slide has reached its target.
func (s Slide) Settled() bool {
	return s.offset == s.target
}

// SetTarget starts sliding toward the given page index.
func (s *Slide) SetTarget(index int) {
	s.target = float64(index)
}

// Snap jumps straight to the given page index without animating.
func (s *Slide) Snap(index int) {
	s.offset = float64(index)
	s.target = s.offset
}

// Step advances the offset one increment toward the target and reports
// whether the slide is still moving afterwards. The final step lands
// exactly on the target, so repeated ticks cannot overshoot or drift.
func (s *Slide) Step() bool {
	delta := s.target - s.offset
	switch {
	case delta == 0:
		return false
	case math.Abs(delta) <= StepSize:
		s.offset = s.target
		return false
	case delta > 0:
		s.offset += StepSize
	default:
		s.offset -= StepSize
	}
	return true
}
