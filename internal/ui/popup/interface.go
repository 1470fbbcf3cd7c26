package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is what the popup manager expects of a modal component. The
// manager owns the border and centering; View returns content only.
type Popup interface {
	Init() tea.Cmd

	// Update handles one message. The returned Popup is the receiver for
	// pointer-based models.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the bare content.
	View() string

	// SetSize tells the popup how much room the terminal offers.
	SetSize(width, height int)
}
