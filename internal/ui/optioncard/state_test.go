package optioncard

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		correct  bool
		revealed bool
		want     State
	}{
		{
			name:     "untouched option",
			selected: false,
			correct:  false,
			revealed: false,
			want:     StateNeutral,
		},
		{
			name:     "picked before reveal",
			selected: true,
			correct:  false,
			revealed: false,
			want:     StateSelected,
		},
		{
			name:     "correctness hidden before reveal",
			selected: false,
			correct:  true,
			revealed: false,
			want:     StateNeutral,
		},
		{
			name:     "picked correct before reveal still plain selected",
			selected: true,
			correct:  true,
			revealed: false,
			want:     StateSelected,
		},
		{
			name:     "revealed correct unpicked",
			selected: false,
			correct:  true,
			revealed: true,
			want:     StateRevealedCorrect,
		},
		{
			name:     "revealed correct picked",
			selected: true,
			correct:  true,
			revealed: true,
			want:     StateRevealedCorrect,
		},
		{
			name:     "revealed wrong pick",
			selected: true,
			correct:  false,
			revealed: true,
			want:     StateRevealedWrong,
		},
		{
			name:     "revealed untouched wrong answer",
			selected: false,
			correct:  false,
			revealed: true,
			want:     StateNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.selected, tt.correct, tt.revealed)
			if got != tt.want {
				t.Errorf("Classify(%v, %v, %v) = %v, want %v",
					tt.selected, tt.correct, tt.revealed, got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNeutral, "Neutral"},
		{StateSelected, "Selected"},
		{StateRevealedCorrect, "RevealedCorrect"},
		{StateRevealedWrong, "RevealedWrong"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
