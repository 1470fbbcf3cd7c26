// Package app wires the cram screens into one bubbletea program: the deck
// picker, the quiz carousel, and the results report. The model follows the
// Elm shape; all animation runs on tick messages and every handler returns
// the next command explicitly.
package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/osmandemiroz/cram/internal/chime"
	"github.com/osmandemiroz/cram/internal/config"
	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/errmsg"
	"github.com/osmandemiroz/cram/internal/keymap"
	"github.com/osmandemiroz/cram/internal/session"
	"github.com/osmandemiroz/cram/internal/ui/carousel"
	"github.com/osmandemiroz/cram/internal/ui/deckpicker"
	"github.com/osmandemiroz/cram/internal/ui/feedback"
	"github.com/osmandemiroz/cram/internal/ui/report"
)

// errNoQuestions guards sessions started on decks that bypassed Load.
var errNoQuestions = errors.New("deck has no questions")

// Screen identifies which top-level screen has input focus.
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenQuiz
	ScreenReport
)

// Model is the root bubbletea model.
type Model struct {
	Width  int
	Height int

	cfg    *config.Config
	logger *log.Logger
	sound  *chime.Player

	screen Screen
	picker deckpicker.Model
	report report.Model
	Popups PopupManager

	// Quiz state. session is nil outside a run; deck keeps the active deck
	// around for the report screen's restart.
	deck      deck.Deck
	session   *session.Session
	slide     carousel.Slide
	slideSeq  int
	banner    feedback.State
	bannerSeq int

	slideEvery time.Duration

	pickerKeys *keymap.Resolver
	quizKeys   *keymap.Resolver
	reportKeys *keymap.Resolver
}

// New builds the root model. decks populate the picker; sound may be a
// disabled player but must not be nil.
func New(cfg *config.Config, decks []*deck.Deck, sound *chime.Player, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	picker := deckpicker.New()
	owned := make([]deck.Deck, len(decks))
	for i, d := range decks {
		owned[i] = *d
	}
	picker.SetDecks(owned)

	return Model{
		cfg:        cfg,
		logger:     logger,
		sound:      sound,
		screen:     ScreenPicker,
		picker:     picker,
		report:     report.New(),
		Popups:     NewPopupManager(),
		slideEvery: time.Duration(cfg.GetQuizConfig().SlideMs) * time.Millisecond,
		pickerKeys: keymap.ForContext("picker"),
		quizKeys:   keymap.ForContext("quiz"),
		reportKeys: keymap.ForContext("report"),
	}
}

// StartDeck skips the picker and opens a quiz on d. Used for --deck.
func (m Model) StartDeck(d deck.Deck) Model {
	next, _ := m.startSession(d)
	model, ok := next.(Model)
	if !ok {
		return m
	}
	return model
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// CurrentScreen returns the screen currently shown.
func (m Model) CurrentScreen() Screen {
	return m.screen
}

func (m Model) startSession(d deck.Deck) (tea.Model, tea.Cmd) {
	if len(d.Questions) == 0 {
		// Load validates decks, so this only guards hand-built ones.
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpSessionStart, d.Title, errNoQuestions))
		return m, nil
	}

	// The session gets its own copy; the model value is recreated on every
	// update and must not be aliased.
	owned := d
	m.deck = d
	m.session = session.New(&owned, m.cfg.GetQuizConfig().Shuffle)
	m.slide = carousel.NewSlide()
	m.slideSeq++
	m.banner = feedback.State{}
	m.bannerSeq++
	m.screen = ScreenQuiz
	m.logger.Debug("session started",
		"deck", d.Title,
		"questions", len(d.Questions),
		"shuffle", m.cfg.GetQuizConfig().Shuffle)
	return m, nil
}
