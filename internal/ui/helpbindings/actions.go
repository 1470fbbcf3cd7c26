package helpbindings

import (
	"github.com/osmandemiroz/cram/internal/ui/action"
)

// Close asks the app to dismiss the help popup.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg wraps a helpbindings action in the app's action envelope.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
