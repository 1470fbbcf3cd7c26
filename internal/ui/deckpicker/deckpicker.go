// Package deckpicker renders the start screen: every discovered deck in a
// list narrowed live by a filter input. The input stays focused the whole
// time, so printable keys type into it and navigation runs on arrows.
package deckpicker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/ui"
	"github.com/osmandemiroz/cram/internal/ui/cursor"
	"github.com/osmandemiroz/cram/internal/ui/render"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// Model is the deck picker screen.
type Model struct {
	ui.Base
	decks       []deck.Deck
	filtered    []int // indexes into decks matching the filter
	filterInput textinput.Model
	cursor      cursor.Cursor
}

// New creates the picker with an empty deck list.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter decks"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{
		filterInput: ti,
		cursor:      cursor.New(ui.ScrollMargin),
	}
}

// SetSize sets the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.filterInput.Width = max(width-8, 10)
}

// SetDecks replaces the deck list and reapplies the current filter.
func (m *Model) SetDecks(decks []deck.Deck) {
	m.decks = decks
	m.refilter()
	m.cursor.Reset()
}

// SelectedDeck returns the deck under the cursor.
func (m Model) SelectedDeck() (deck.Deck, bool) {
	if pos := m.cursor.Pos(); pos >= 0 && pos < len(m.filtered) {
		return m.decks[m.filtered[pos]], true
	}
	return deck.Deck{}, false
}

// Init implements tea.Model-style initialization.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys and input events. Enter emits a Picked action for
// the deck under the cursor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "ctrl+p":
		m.cursor.Move(-1, len(m.filtered), m.listHeight())
	case "down", "ctrl+n":
		m.cursor.Move(1, len(m.filtered), m.listHeight())
	case "enter":
		if d, ok := m.SelectedDeck(); ok {
			return m, func() tea.Msg {
				return ActionMsg(Picked{Deck: d})
			}
		}
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.refilter()
		return m, cmd
	}
	return m, nil
}

// refilter rebuilds the visible list from the current filter text.
func (m *Model) refilter() {
	q := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))

	m.filtered = m.filtered[:0]
	for i, d := range m.decks {
		if q == "" || deckMatches(d, q) {
			m.filtered = append(m.filtered, i)
		}
	}

	m.cursor.ClampToBounds(len(m.filtered))
	m.cursor.EnsureVisible(len(m.filtered), m.listHeight())
}

func deckMatches(d deck.Deck, q string) bool {
	if strings.Contains(strings.ToLower(d.Title), q) {
		return true
	}
	return strings.Contains(strings.ToLower(filepath.Base(d.Path)), q)
}

func (m Model) listHeight() int {
	return max(m.ListHeight(6), 1)
}

// View renders the screen at the size set via SetSize.
func (m Model) View() string {
	if m.Width() <= 0 {
		return ""
	}

	t := styles.T()
	w := m.Width()

	var b strings.Builder
	b.WriteString(render.Center(t.S().Title.Render("Pick a deck"), w))
	b.WriteString("\n\n")
	b.WriteString("  " + m.filterInput.View())
	b.WriteString("\n\n")

	listHeight := m.listHeight()
	rendered := 0
	switch {
	case len(m.decks) == 0:
		b.WriteString(render.Center(t.S().Subtle.Render("No decks found"), w))
		b.WriteString("\n")
		rendered = 1
	case len(m.filtered) == 0:
		b.WriteString(render.Center(t.S().Subtle.Render("No decks match"), w))
		b.WriteString("\n")
		rendered = 1
	default:
		start, end := m.cursor.VisibleRange(len(m.filtered), listHeight)
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i, w))
			b.WriteString("\n")
		}
		rendered = end - start
	}
	for i := rendered; i < listHeight; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("↑↓ move · enter play · esc quit"))

	return b.String()
}

func (m Model) renderRow(pos, width int) string {
	d := m.decks[m.filtered[pos]]
	t := styles.T()

	marker := "  "
	if pos == m.cursor.Pos() {
		marker = icons.Marker() + " "
	}

	right := t.S().Subtle.Render(deckInfo(d))

	budget := width - lipgloss.Width(marker) - lipgloss.Width(right) - 1
	title := render.TruncateEllipsis(icons.FormatDeck(render.Sanitize(d.Title)), max(budget, 8))

	titleStyle := t.S().Base
	if pos == m.cursor.Pos() {
		titleStyle = t.S().Selected
	}

	return render.Row(marker+titleStyle.Render(title), right, width)
}

func deckInfo(d deck.Deck) string {
	qty := fmt.Sprintf("%d questions", len(d.Questions))
	if len(d.Questions) == 1 {
		qty = "1 question"
	}
	if d.Path == "" {
		return qty + " · builtin"
	}
	return fmt.Sprintf("%s · %s", qty, humanize.IBytes(uint64(d.Size))) //nolint:gosec // sizes come from os.Stat
}
