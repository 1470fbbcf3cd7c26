package keymap

// Binding describes a single key binding for dispatch and documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "picker", "quiz", "report"
}

// Bindings contains all key bindings for dispatch and help generation.
// Globals apply on every screen except the deck picker, where printable
// keys feed the filter input instead.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleSound, []string{"m"}, "Toggle sound", "global"},

	// Deck picker
	{ActionQuit, []string{"esc", "ctrl+c"}, "Quit", "picker"},
	{ActionMoveUp, []string{"up", "ctrl+p"}, "Move up", "picker"},
	{ActionMoveDown, []string{"down", "ctrl+n"}, "Move down", "picker"},
	{ActionSelect, []string{"enter"}, "Start quiz", "picker"},

	// Quiz
	{ActionMoveUp, []string{"k", "up"}, "Previous option", "quiz"},
	{ActionMoveDown, []string{"j", "down"}, "Next option", "quiz"},
	{ActionPickOption, []string{"1", "2", "3", "4", "5", "6"}, "Pick option", "quiz"},
	{ActionSelect, []string{"enter", " "}, "Submit / next question", "quiz"},
	{ActionSkip, []string{"s"}, "Skip question", "quiz"},

	// Report
	{ActionMoveUp, []string{"k", "up"}, "Scroll up", "report"},
	{ActionMoveDown, []string{"j", "down"}, "Scroll down", "report"},
	{ActionJumpStart, []string{"g", "home"}, "First entry", "report"},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", "report"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "report"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "report"},
	{ActionRestart, []string{"r"}, "Retry deck", "report"},
	{ActionBackToDecks, []string{"enter", "d", "esc"}, "Back to decks", "report"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
