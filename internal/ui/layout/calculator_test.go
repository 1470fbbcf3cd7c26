package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "title bar only",
			windowHeight: 40,
			opts:         ContentOpts{TitleBarHeight: 2},
			want:         38,
		},
		{
			name:         "with progress bar",
			windowHeight: 40,
			opts:         ContentOpts{TitleBarHeight: 2, ProgressBarHeight: 1},
			want:         37,
		},
		{
			name:         "with feedback banner",
			windowHeight: 40,
			opts:         ContentOpts{TitleBarHeight: 2, ProgressBarHeight: 1, FeedbackHeight: 3},
			want:         34,
		},
		{
			name:         "bare window",
			windowHeight: 24,
			opts:         ContentOpts{},
			want:         24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{69, true},
		{70, false},
		{120, false},
	}

	for _, tt := range tests {
		got := IsNarrowMode(tt.width)
		if got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestCardWidth(t *testing.T) {
	tests := []struct {
		name        string
		windowWidth int
		want        int
	}{
		{
			name:        "narrow terminal uses full width minus margin",
			windowWidth: 50,
			want:        46,
		},
		{
			name:        "tiny terminal clamps to minimum",
			windowWidth: 20,
			want:        MinCardWidth,
		},
		{
			name:        "wide terminal takes half",
			windowWidth: 100,
			want:        50,
		},
		{
			name:        "very wide terminal caps at maximum",
			windowWidth: 200,
			want:        MaxCardWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardWidth(tt.windowWidth)
			if got != tt.want {
				t.Errorf("CardWidth(%d) = %d, want %d", tt.windowWidth, got, tt.want)
			}
		})
	}
}

func TestScaledWidth(t *testing.T) {
	tests := []struct {
		name      string
		cardWidth int
		scale     float64
		want      int
	}{
		{
			name:      "unit scale keeps width",
			cardWidth: 40,
			scale:     1.0,
			want:      40,
		},
		{
			name:      "enlarged centered card",
			cardWidth: 40,
			scale:     1.2,
			want:      48,
		},
		{
			name:      "shrunk side card",
			cardWidth: 40,
			scale:     0.5,
			want:      20,
		},
		{
			name:      "rounds to nearest column",
			cardWidth: 41,
			scale:     1.1,
			want:      45, // 45.1 rounds down
		},
		{
			name:      "never below one cell",
			cardWidth: 1,
			scale:     0.5,
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaledWidth(tt.cardWidth, tt.scale)
			if got != tt.want {
				t.Errorf("ScaledWidth(%d, %v) = %d, want %d", tt.cardWidth, tt.scale, got, tt.want)
			}
		})
	}
}

func TestOffsetColumns(t *testing.T) {
	tests := []struct {
		offset float64
		want   int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{12.7, 13},
		{-0.4, 0},
		{-0.5, -1},
		{-12.7, -13},
	}

	for _, tt := range tests {
		got := OffsetColumns(tt.offset)
		if got != tt.want {
			t.Errorf("OffsetColumns(%v) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}
