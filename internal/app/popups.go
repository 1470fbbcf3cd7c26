package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osmandemiroz/cram/internal/ui/confirm"
	"github.com/osmandemiroz/cram/internal/ui/helpbindings"
	"github.com/osmandemiroz/cram/internal/ui/overlay"
	"github.com/osmandemiroz/cram/internal/ui/popup"
)

// helpMaxWidth caps the help popup; a binding table reads badly at full
// terminal width.
const helpMaxWidth = 64

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupError
)

// PopupManager owns the modal overlays: help, confirmation, and error.
type PopupManager struct {
	help     helpbindings.Model
	showHelp bool
	confirm  confirm.Model
	errorMsg string

	width  int
	height int
}

// NewPopupManager creates a manager with initialized popup components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:    helpbindings.New(),
		confirm: confirm.New(),
	}
}

// SetSize updates the dimensions used for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.showHelp {
		p.help.SetSize(width, height)
	}
	if p.confirm.Active() {
		p.confirm.SetSize(width, height)
	}
}

// ActivePopup returns the popup holding input focus. The error overlay
// outranks help, help outranks confirmation.
func (p *PopupManager) ActivePopup() PopupType {
	if p.errorMsg != "" {
		return PopupError
	}
	if p.showHelp {
		return PopupHelp
	}
	if p.confirm.Active() {
		return PopupConfirm
	}
	return PopupNone
}

// ShowHelp displays the help popup for the given binding contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp hides the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// IsHelpVisible reports whether the help popup is shown.
func (p *PopupManager) IsHelpVisible() bool {
	return p.showHelp
}

// ShowConfirm displays a yes/no dialog. context rides along on the
// confirm.Result action so the caller can tell dialogs apart.
func (p *PopupManager) ShowConfirm(title, message string, context any) {
	p.confirm.Show(title, message, context, p.width, p.height)
}

// HideConfirm dismisses the confirmation dialog.
func (p *PopupManager) HideConfirm() {
	p.confirm.Reset()
}

// IsConfirmVisible reports whether the confirmation dialog is shown.
func (p *PopupManager) IsConfirmVisible() bool {
	return p.confirm.Active()
}

// ShowError displays an error overlay. Any key dismisses it.
func (p *PopupManager) ShowError(msg string) {
	p.errorMsg = msg
}

// HideError clears the error overlay.
func (p *PopupManager) HideError() {
	p.errorMsg = ""
}

// IsErrorVisible reports whether the error overlay is shown.
func (p *PopupManager) IsErrorVisible() bool {
	return p.errorMsg != ""
}

// ErrorMsg returns the current error message.
func (p *PopupManager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes a key to the active popup. The boolean reports whether
// a popup consumed the key.
func (p *PopupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	if p.showHelp {
		_, cmd := p.help.Update(msg)
		return true, cmd
	}

	if p.confirm.Active() {
		_, cmd := p.confirm.Update(msg)
		return true, cmd
	}

	return false, nil
}

// RenderOverlay stacks the active popups on top of the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	if p.confirm.Active() {
		box := popup.RenderBordered(p.confirm.View(), p.width, p.height, popup.SizeAuto)
		base = overlay.Compose(base, box, p.width, p.height)
	}

	if p.showHelp {
		size := popup.SizeConfig{MaxWidth: helpMaxWidth}
		box := popup.RenderBordered(p.help.View(), p.width, p.height, size)
		base = overlay.Compose(base, box, p.width, p.height)
	}

	if p.errorMsg != "" {
		dlg := popup.New()
		dlg.Title = "Error"
		dlg.Content = p.errorMsg
		dlg.Footer = "Press any key to dismiss"
		base = overlay.Compose(base, dlg.Render(p.width, p.height), p.width, p.height)
	}

	return base
}
