// Package deck loads and validates question decks from TOML files.
package deck

import (
	"errors"
	"fmt"
	"strings"
)

// MinOptions and MaxOptions bound the number of answer options per question.
// The quiz screen binds options to the keys 1-9 and a-f, and fewer than two
// options is not a question.
const (
	MinOptions = 2
	MaxOptions = 6
)

// Question is one multiple-choice question.
type Question struct {
	Prompt  string   `koanf:"prompt"`
	Options []string `koanf:"options"`
	Answer  int      `koanf:"answer"` // index into Options
}

// Deck is an ordered collection of questions loaded from one file.
type Deck struct {
	Title     string     `koanf:"title"`
	Questions []Question `koanf:"questions"`

	// File metadata, not part of the TOML schema.
	Path string `koanf:"-"` // empty for the builtin deck
	Size int64  `koanf:"-"` // file size in bytes, 0 for the builtin deck
}

// Validate checks the deck for structural problems. The returned error names
// the first offending question by its 1-based position.
func (d *Deck) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("missing title")
	}
	if len(d.Questions) == 0 {
		return errors.New("no questions")
	}
	for i, q := range d.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d: missing prompt", i+1)
		}
		if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
			return fmt.Errorf("question %d: need %d-%d options, got %d",
				i+1, MinOptions, MaxOptions, len(q.Options))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("question %d: option %d is empty", i+1, j+1)
			}
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return fmt.Errorf("question %d: answer index %d out of range", i+1, q.Answer)
		}
	}
	return nil
}
