package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DataDir returns the per-user deck directory. Decks dropped there show up
// in the picker without any configuration.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "cram", "decks")
}

// Load reads and validates a single deck file.
func Load(path string) (*Deck, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load deck %s: %w", path, err)
	}

	d := &Deck{}
	if err := k.Unmarshal("", d); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	d.Path = path
	if info, err := os.Stat(path); err == nil {
		d.Size = info.Size()
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	return d, nil
}

// Discover scans the data dir, any extra configured dirs, and the working
// directory for deck files. Unreadable or invalid files are skipped so one
// broken deck cannot hide the rest; results are de-duplicated by absolute
// path and sorted by title.
func Discover(extraDirs []string) []*Deck {
	dirs := append([]string{DataDir()}, extraDirs...)
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	seen := make(map[string]bool)
	var decks []*Deck

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		// Skip missing or unreadable dirs - intentionally continuing with the rest
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if abs, absErr := filepath.Abs(path); absErr == nil {
				path = abs
			}
			if seen[path] {
				continue
			}
			seen[path] = true

			d, loadErr := Load(path)
			// Skip files that are not valid decks (config.toml lands here too)
			if loadErr != nil {
				continue
			}
			decks = append(decks, d)
		}
	}

	sort.Slice(decks, func(i, j int) bool {
		if decks[i].Title != decks[j].Title {
			return decks[i].Title < decks[j].Title
		}
		return decks[i].Path < decks[j].Path
	})
	return decks
}

// All returns every playable deck: the embedded starter first, then decks
// discovered on disk. A starter that fails to parse is dropped the same way
// Discover drops broken files.
func All(extraDirs []string) []*Deck {
	var decks []*Deck
	if b, err := Builtin(); err == nil {
		decks = append(decks, b)
	}
	return append(decks, Discover(extraDirs)...)
}
