// Package optioncard renders a single quiz answer option and classifies the
// visual state an option should take from its selection flags.
package optioncard

// State represents the visual state of an answer option.
type State int

const (
	// StateNeutral is an option with nothing to signal: not picked, and
	// either unrevealed or revealed as an answer nobody chose.
	StateNeutral State = iota
	// StateSelected is the player's current pick before the reveal.
	StateSelected
	// StateRevealedCorrect marks the correct answer after the reveal,
	// whether or not the player picked it.
	StateRevealedCorrect
	// StateRevealedWrong marks the player's pick once it turned out wrong.
	StateRevealedWrong
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNeutral:
		return "Neutral"
	case StateSelected:
		return "Selected"
	case StateRevealedCorrect:
		return "RevealedCorrect"
	case StateRevealedWrong:
		return "RevealedWrong"
	default:
		return "Unknown"
	}
}

// Classify reduces an option's selection flags to a visual state.
// Correctness stays invisible until the reveal; after it, the correct
// answer wins over the player's selection.
func Classify(selected, correct, revealed bool) State {
	switch {
	case revealed && correct:
		return StateRevealedCorrect
	case revealed && selected:
		return StateRevealedWrong
	case revealed:
		return StateNeutral
	case selected:
		return StateSelected
	default:
		return StateNeutral
	}
}
