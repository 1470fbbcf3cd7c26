package deck

import (
	_ "embed"
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed builtin.toml
var builtinTOML []byte

// Builtin returns the embedded starter deck, so a fresh install has
// something to play before any deck file exists.
func Builtin() (*Deck, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(builtinTOML), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load builtin deck: %w", err)
	}

	d := &Deck{}
	if err := k.Unmarshal("", d); err != nil {
		return nil, fmt.Errorf("parse builtin deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid builtin deck: %w", err)
	}
	return d, nil
}
