package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons    string   `koanf:"icons"`     // "nerd", "unicode", or "none"
	Theme    string   `koanf:"theme"`     // color palette name
	DeckDirs []string `koanf:"deck_dirs"` // extra directories to scan for decks

	// Carousel motion settings
	Parallax ParallaxConfig `koanf:"parallax"`

	// Feedback chime settings
	Sound SoundConfig `koanf:"sound"`

	// Session settings
	Quiz QuizConfig `koanf:"quiz"`
}

// ParallaxConfig controls how question cards move on the carousel.
type ParallaxConfig struct {
	Speed      float64 `koanf:"speed"`       // horizontal motion multiplier (0-1.5, default: 0.5)
	ScaleSpeed float64 `koanf:"scale_speed"` // card growth at center (-0.5-0.5, default: 0.2)
	Fade       bool    `koanf:"fade"`        // fade off-center cards (default: true)
}

// SoundConfig controls the synthesized feedback chimes.
type SoundConfig struct {
	Enabled bool    `koanf:"enabled"` // play chimes on reveal and finish (default: true)
	Volume  float64 `koanf:"volume"`  // chime volume (0-1, default: 0.8)
}

// QuizConfig controls quiz session behavior.
type QuizConfig struct {
	Shuffle bool `koanf:"shuffle"`  // shuffle question order (default: false)
	SlideMs int  `koanf:"slide_ms"` // carousel animation tick in milliseconds (10-200, default: 30)
}

// Load reads configuration from the default locations, later files winning.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFile reads configuration from a single explicit file.
// Unlike Load, a missing path is an error.
func LoadFile(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	// Defaults survive unmarshal for keys absent from every file.
	cfg := &Config{
		Icons: "unicode",
		Theme: "default",
		Parallax: ParallaxConfig{
			Speed:      0.5,
			ScaleSpeed: 0.2,
			Fade:       true,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Quiz: QuizConfig{
			SlideMs: 30,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in deck_dirs
	for i, dir := range cfg.DeckDirs {
		cfg.DeckDirs[i] = expandPath(dir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cram/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cram", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetParallaxConfig returns the parallax configuration with out-of-range
// values replaced by defaults. The carousel feeds these straight into the
// transform functions, so user input is bounded here and nowhere else.
func (c *Config) GetParallaxConfig() ParallaxConfig {
	cfg := c.Parallax

	if cfg.Speed < 0 || cfg.Speed > 1.5 {
		cfg.Speed = 0.5
	}
	if cfg.ScaleSpeed < -0.5 || cfg.ScaleSpeed > 0.5 {
		cfg.ScaleSpeed = 0.2
	}

	return cfg
}

// GetSoundConfig returns the sound configuration with defaults applied.
func (c *Config) GetSoundConfig() SoundConfig {
	cfg := c.Sound

	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 0.8
	}

	return cfg
}

// GetQuizConfig returns the quiz configuration with defaults applied.
func (c *Config) GetQuizConfig() QuizConfig {
	cfg := c.Quiz

	if cfg.SlideMs < 10 || cfg.SlideMs > 200 {
		cfg.SlideMs = 30
	}

	return cfg
}
