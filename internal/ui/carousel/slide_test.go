package carousel

import "testing"

func TestNewSlide(t *testing.T) {
	s := NewSlide()

	if s.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", s.Offset())
	}
	if !s.Settled() {
		t.Error("new slide should be settled")
	}
}

func TestSlideStepReachesTarget(t *testing.T) {
	s := NewSlide()
	s.SetTarget(1)

	if s.Settled() {
		t.Fatal("slide should not be settled after SetTarget")
	}

	steps := 0
	for s.Step() {
		steps++
		if steps > 100 {
			t.Fatal("slide never settled")
		}
	}

	if s.Offset() != 1.0 {
		t.Errorf("Offset() = %v, want exactly 1.0", s.Offset())
	}
	if !s.Settled() {
		t.Error("slide should be settled at target")
	}
	// 1.0 / StepSize increments, the last one landing exactly
	if want := 4; steps != want {
		t.Errorf("steps = %d, want %d", steps, want)
	}
}

func TestSlideStepMonotonicNoOvershoot(t *testing.T) {
	s := NewSlide()
	s.SetTarget(2)

	prev := s.Offset()
	for range 100 {
		still := s.Step()
		if s.Offset() < prev {
			t.Fatalf("offset went backwards: %v -> %v", prev, s.Offset())
		}
		if s.Offset() > 2 {
			t.Fatalf("offset overshot target: %v", s.Offset())
		}
		prev = s.Offset()
		if !still {
			break
		}
	}

	if s.Offset() != 2.0 {
		t.Errorf("Offset() = %v, want exactly 2.0", s.Offset())
	}
}

func TestSlideStepBackward(t *testing.T) {
	s := NewSlide()
	s.Snap(3)
	s.SetTarget(1)

	for s.Step() {
	}

	if s.Offset() != 1.0 {
		t.Errorf("Offset() = %v, want exactly 1.0", s.Offset())
	}
}

func TestSlideStepSettledIsNoop(t *testing.T) {
	s := NewSlide()
	s.Snap(2)

	if s.Step() {
		t.Error("Step() on a settled slide should report not moving")
	}
	if s.Offset() != 2.0 {
		t.Errorf("Offset() = %v, want 2.0", s.Offset())
	}
}

func TestSlideSnap(t *testing.T) {
	s := NewSlide()
	s.SetTarget(5)
	s.Step()

	s.Snap(0)

	if s.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0 after Snap", s.Offset())
	}
	if !s.Settled() {
		t.Error("slide should be settled after Snap")
	}
}

func TestSlideTarget(t *testing.T) {
	s := NewSlide()
	s.SetTarget(3)

	s.Step()

	if s.Target() != 3 {
		t.Errorf("Target() = %d, want 3", s.Target())
	}
}
