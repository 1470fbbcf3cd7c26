package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osmandemiroz/cram/internal/deck"
)

// slideTickCmd schedules the next carousel animation step.
func slideTickCmd(seq int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(_ time.Time) tea.Msg {
		return SlideTickMsg{Seq: seq}
	})
}

// feedbackTickCmd schedules the next banner phase transition.
func feedbackTickCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(_ time.Time) tea.Msg {
		return FeedbackTickMsg{Seq: seq}
	})
}

// reloadDecksCmd rescans the deck directories so newly dropped files show
// up when the player returns to the picker.
func reloadDecksCmd(extraDirs []string) tea.Cmd {
	return func() tea.Msg {
		return DecksReloadedMsg{Decks: deck.All(extraDirs)}
	}
}
