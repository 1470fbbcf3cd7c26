package app

import "github.com/osmandemiroz/cram/internal/deck"

// SlideTickMsg advances the carousel slide animation by one step. Seq
// guards against ticks armed for a superseded animation chain.
type SlideTickMsg struct {
	Seq int
}

// FeedbackTickMsg moves the feedback banner to its next phase. Seq guards
// against ticks armed for a banner that was since replaced.
type FeedbackTickMsg struct {
	Seq int
}

// DecksReloadedMsg carries a fresh deck list scanned off the update loop.
type DecksReloadedMsg struct {
	Decks []*deck.Deck
}
