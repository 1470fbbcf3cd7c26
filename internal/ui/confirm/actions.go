package confirm

import (
	"github.com/osmandemiroz/cram/internal/ui/action"
)

// Result reports how the dialog was answered. Context comes back exactly
// as the caller passed it to Show, so one handler can tell dialogs apart.
type Result struct {
	Confirmed      bool
	Context        any
	SelectedOption int // chosen index in multi-option mode
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a confirm action in the app's action envelope.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
