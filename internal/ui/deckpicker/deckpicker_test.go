package deckpicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/ui/action"
	"github.com/osmandemiroz/cram/internal/ui/testutil"
)

func testDecks() []deck.Deck {
	return []deck.Deck{
		{
			Title: "Go Basics",
			Questions: []deck.Question{
				{Prompt: "a", Options: []string{"x", "y"}, Answer: 0},
				{Prompt: "b", Options: []string{"x", "y"}, Answer: 0},
				{Prompt: "c", Options: []string{"x", "y"}, Answer: 0},
			},
			Path: "/decks/go.toml",
			Size: 2048,
		},
		{
			Title: "Networking",
			Questions: []deck.Question{
				{Prompt: "a", Options: []string{"x", "y"}, Answer: 0},
				{Prompt: "b", Options: []string{"x", "y"}, Answer: 0},
			},
			Path: "/decks/net.toml",
			Size: 1024,
		},
		{
			Title: "History Facts",
			Questions: []deck.Question{
				{Prompt: "a", Options: []string{"x", "y"}, Answer: 0},
			},
		},
	}
}

func newTestModel() Model {
	m := New()
	m.SetSize(70, 20)
	m.SetDecks(testDecks())
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestViewListsDecks(t *testing.T) {
	out := testutil.StripANSI(newTestModel().View())

	for _, want := range []string{"Go Basics", "Networking", "History Facts"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should list deck %q", want)
		}
	}
	if !strings.Contains(out, "3 questions") {
		t.Error("view should show question counts")
	}
	if !strings.Contains(out, "2.0 KiB") {
		t.Error("view should show deck file sizes")
	}
	if !strings.Contains(out, "1 question · builtin") {
		t.Error("builtin deck should be labeled instead of sized")
	}
}

func TestFilterNarrows(t *testing.T) {
	m := typeString(newTestModel(), "net")

	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, "Networking") {
		t.Error("matching deck should stay visible")
	}
	if strings.Contains(out, "Go Basics") || strings.Contains(out, "History Facts") {
		t.Error("non-matching decks should be filtered out")
	}

	d, ok := m.SelectedDeck()
	if !ok || d.Title != "Networking" {
		t.Errorf("SelectedDeck() = %q, %v, want Networking", d.Title, ok)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	m := typeString(newTestModel(), "GO")

	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, "Go Basics") {
		t.Error("filter should match case-insensitively")
	}
	if strings.Contains(out, "Networking") {
		t.Error("non-matching decks should be filtered out")
	}
}

func TestFilterMatchesFileName(t *testing.T) {
	m := typeString(newTestModel(), "net.t")

	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, "Networking") {
		t.Error("filter should match the deck file name")
	}
	if strings.Contains(out, "Go Basics") {
		t.Error("non-matching decks should be filtered out")
	}
}

func TestFilterClampsCursor(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m = typeString(m, "go")

	d, ok := m.SelectedDeck()
	if !ok || d.Title != "Go Basics" {
		t.Errorf("SelectedDeck() = %q, %v, want cursor clamped to Go Basics", d.Title, ok)
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if d, _ := m.SelectedDeck(); d.Title != "Networking" {
		t.Errorf("after down, selected = %q, want Networking", d.Title)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if d, _ := m.SelectedDeck(); d.Title != "History Facts" {
		t.Errorf("after ctrl+n, selected = %q, want History Facts", d.Title)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if d, _ := m.SelectedDeck(); d.Title != "History Facts" {
		t.Errorf("cursor should clamp at the last deck, got %q", d.Title)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if d, _ := m.SelectedDeck(); d.Title != "Networking" {
		t.Errorf("after ctrl+p, selected = %q, want Networking", d.Title)
	}
}

func TestMarkerFollowsCursor(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	out := testutil.StripANSI(m.View())
	if line := testutil.FindLine(out, "Networking"); !strings.HasPrefix(line, ">") {
		t.Errorf("selected row should carry the marker, got %q", line)
	}
	if line := testutil.FindLine(out, "Go Basics"); strings.HasPrefix(line, ">") {
		t.Error("marker should have left the first row")
	}
}

func TestEnterEmitsPicked(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatalf("command should produce an action.Msg, got %T", cmd())
	}
	picked, ok := msg.Action.(Picked)
	if !ok {
		t.Fatalf("action should be Picked, got %T", msg.Action)
	}
	if picked.Deck.Title != "Go Basics" {
		t.Errorf("picked deck = %q, want Go Basics", picked.Deck.Title)
	}
}

func TestEnterWithNoMatch(t *testing.T) {
	m := typeString(newTestModel(), "zzz")

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no matching deck should do nothing")
	}
}

func TestViewNoMatches(t *testing.T) {
	m := typeString(newTestModel(), "zzz")

	if !strings.Contains(testutil.StripANSI(m.View()), "No decks match") {
		t.Error("view should say when the filter matches nothing")
	}
}

func TestViewNoDecks(t *testing.T) {
	m := New()
	m.SetSize(70, 20)
	m.SetDecks(nil)

	if !strings.Contains(testutil.StripANSI(m.View()), "No decks found") {
		t.Error("view should say when no decks were discovered")
	}
}

func TestViewExactLineCount(t *testing.T) {
	out := newTestModel().View()

	if got := len(strings.Split(out, "\n")); got != 20 {
		t.Errorf("view has %d lines, want 20", got)
	}
}
