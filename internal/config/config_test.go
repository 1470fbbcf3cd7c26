//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/quizzes",
			expected: filepath.Join(home, "quizzes"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/quizzes/go/stdlib",
			expected: filepath.Join(home, "quizzes", "go", "stdlib"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/share/decks",
			expected: "/usr/local/share/decks",
		},
		{
			name:     "relative path unchanged",
			input:    "decks/go",
			expected: "decks/go",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/cram/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "cram", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestGetParallaxConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected ParallaxConfig
	}{
		{
			name: "valid values pass through",
			config: Config{
				Parallax: ParallaxConfig{Speed: 1.0, ScaleSpeed: 0.3, Fade: true},
			},
			expected: ParallaxConfig{Speed: 1.0, ScaleSpeed: 0.3, Fade: true},
		},
		{
			name: "zero speed allowed (static cards)",
			config: Config{
				Parallax: ParallaxConfig{Speed: 0, ScaleSpeed: 0},
			},
			expected: ParallaxConfig{Speed: 0, ScaleSpeed: 0},
		},
		{
			name: "negative speed falls back to default",
			config: Config{
				Parallax: ParallaxConfig{Speed: -1, ScaleSpeed: 0.2},
			},
			expected: ParallaxConfig{Speed: 0.5, ScaleSpeed: 0.2},
		},
		{
			name: "excessive speed falls back to default",
			config: Config{
				Parallax: ParallaxConfig{Speed: 7, ScaleSpeed: 0.2},
			},
			expected: ParallaxConfig{Speed: 0.5, ScaleSpeed: 0.2},
		},
		{
			name: "scale speed out of range falls back to default",
			config: Config{
				Parallax: ParallaxConfig{Speed: 0.5, ScaleSpeed: 0.9},
			},
			expected: ParallaxConfig{Speed: 0.5, ScaleSpeed: 0.2},
		},
		{
			name: "boundary values accepted",
			config: Config{
				Parallax: ParallaxConfig{Speed: 1.5, ScaleSpeed: -0.5},
			},
			expected: ParallaxConfig{Speed: 1.5, ScaleSpeed: -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetParallaxConfig()
			if got != tt.expected {
				t.Errorf("GetParallaxConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestGetSoundConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected SoundConfig
	}{
		{
			name:     "valid volume passes through",
			config:   Config{Sound: SoundConfig{Enabled: true, Volume: 0.5}},
			expected: SoundConfig{Enabled: true, Volume: 0.5},
		},
		{
			name:     "zero volume falls back to default",
			config:   Config{Sound: SoundConfig{Volume: 0}},
			expected: SoundConfig{Volume: 0.8},
		},
		{
			name:     "volume above one falls back to default",
			config:   Config{Sound: SoundConfig{Volume: 2}},
			expected: SoundConfig{Volume: 0.8},
		},
		{
			name:     "full volume accepted",
			config:   Config{Sound: SoundConfig{Volume: 1}},
			expected: SoundConfig{Volume: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetSoundConfig()
			if got != tt.expected {
				t.Errorf("GetSoundConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestGetQuizConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected QuizConfig
	}{
		{
			name:     "valid interval passes through",
			config:   Config{Quiz: QuizConfig{Shuffle: true, SlideMs: 50}},
			expected: QuizConfig{Shuffle: true, SlideMs: 50},
		},
		{
			name:     "zero interval falls back to default",
			config:   Config{Quiz: QuizConfig{SlideMs: 0}},
			expected: QuizConfig{SlideMs: 30},
		},
		{
			name:     "too fast falls back to default",
			config:   Config{Quiz: QuizConfig{SlideMs: 5}},
			expected: QuizConfig{SlideMs: 30},
		},
		{
			name:     "too slow falls back to default",
			config:   Config{Quiz: QuizConfig{SlideMs: 1000}},
			expected: QuizConfig{SlideMs: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetQuizConfig()
			if got != tt.expected {
				t.Errorf("GetQuizConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	// Create an empty config file
	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	// Load should succeed even with empty config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Note: Values may be inherited from ~/.config/cram/config.toml if it exists
	// We just verify Load() succeeds and returns a valid config
}

func TestLoadFile_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "default")
	}
	if cfg.Parallax.Speed != 0.5 {
		t.Errorf("Parallax.Speed = %v, want 0.5", cfg.Parallax.Speed)
	}
	if cfg.Parallax.ScaleSpeed != 0.2 {
		t.Errorf("Parallax.ScaleSpeed = %v, want 0.2", cfg.Parallax.ScaleSpeed)
	}
	if !cfg.Parallax.Fade {
		t.Error("Parallax.Fade = false, want true")
	}
	if !cfg.Sound.Enabled {
		t.Error("Sound.Enabled = false, want true")
	}
	if cfg.Sound.Volume != 0.8 {
		t.Errorf("Sound.Volume = %v, want 0.8", cfg.Sound.Volume)
	}
	if cfg.Quiz.SlideMs != 30 {
		t.Errorf("Quiz.SlideMs = %d, want 30", cfg.Quiz.SlideMs)
	}
}

func TestLoadFile_BasicConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	configContent := `
icons = "nerd"
deck_dirs = ["/srv/decks", "~/quizzes"]

[parallax]
speed = 1.0
fade = false

[sound]
enabled = false

[quiz]
shuffle = true
slide_ms = 60
`
	if err := os.WriteFile(path, []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}

	// Keys absent from the file keep their defaults
	if cfg.Parallax.ScaleSpeed != 0.2 {
		t.Errorf("Parallax.ScaleSpeed = %v, want default 0.2", cfg.Parallax.ScaleSpeed)
	}
	if cfg.Sound.Volume != 0.8 {
		t.Errorf("Sound.Volume = %v, want default 0.8", cfg.Sound.Volume)
	}

	// Explicit values override defaults
	if cfg.Parallax.Speed != 1.0 {
		t.Errorf("Parallax.Speed = %v, want 1.0", cfg.Parallax.Speed)
	}
	if cfg.Parallax.Fade {
		t.Error("Parallax.Fade = true, want false")
	}
	if cfg.Sound.Enabled {
		t.Error("Sound.Enabled = true, want false")
	}
	if !cfg.Quiz.Shuffle {
		t.Error("Quiz.Shuffle = false, want true")
	}
	if cfg.Quiz.SlideMs != 60 {
		t.Errorf("Quiz.SlideMs = %d, want 60", cfg.Quiz.SlideMs)
	}

	// Check deck dirs - first should be absolute, second should be expanded
	if len(cfg.DeckDirs) != 2 {
		t.Fatalf("DeckDirs length = %d, want 2", len(cfg.DeckDirs))
	}

	if cfg.DeckDirs[0] != "/srv/decks" {
		t.Errorf("DeckDirs[0] = %q, want %q", cfg.DeckDirs[0], "/srv/decks")
	}

	home, _ := os.UserHomeDir()
	expectedSecond := filepath.Join(home, "quizzes")
	if cfg.DeckDirs[1] != expectedSecond {
		t.Errorf("DeckDirs[1] = %q, want %q", cfg.DeckDirs[1], expectedSecond)
	}
}

func TestLoadFile_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(path, []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() expected error for invalid TOML, got nil")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}
