package deckpicker

import (
	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/ui/action"
)

// Picked reports the deck chosen on the start screen.
type Picked struct {
	Deck deck.Deck
}

// ActionType implements action.Action.
func (a Picked) ActionType() string { return "deckpicker.picked" }

// ActionMsg creates an action.Msg for a deckpicker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "deckpicker", Action: a}
}
