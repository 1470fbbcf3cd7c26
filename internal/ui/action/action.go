// Package action is the envelope widgets use to talk to the app: a
// component emits a Msg from its Update and the app's action handler
// dispatches on the concrete type.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is anything a widget can ask the app to do. ActionType names
// the action for debug logging only; dispatch goes by concrete type.
type Action interface {
	ActionType() string
}

// Msg pairs an action with the name of the widget that raised it.
type Msg struct {
	Source string // Component name: "deckpicker", "confirm", etc.
	Action Action
}

// Msg travels through the bubbletea update loop like any other message.
var _ tea.Msg = Msg{}
