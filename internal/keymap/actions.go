// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleSound Action = "toggle_sound"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Quiz actions
	ActionSelect     Action = "select"      // enter - submit answer or advance
	ActionPickOption Action = "pick_option" // 1-6 - pick an option directly
	ActionSkip       Action = "skip"        // s - skip the current question

	// Report actions
	ActionRestart     Action = "restart"       // r - replay the same deck
	ActionBackToDecks Action = "back_to_decks" // d/esc - return to the deck picker
)
