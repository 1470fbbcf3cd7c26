package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osmandemiroz/cram/internal/deck"
	"github.com/osmandemiroz/cram/internal/keymap"
	"github.com/osmandemiroz/cram/internal/session"
	"github.com/osmandemiroz/cram/internal/ui/action"
	"github.com/osmandemiroz/cram/internal/ui/confirm"
	"github.com/osmandemiroz/cram/internal/ui/deckpicker"
	"github.com/osmandemiroz/cram/internal/ui/feedback"
	"github.com/osmandemiroz/cram/internal/ui/helpbindings"
)

// abandonQuiz is the confirm context for quitting mid-session.
type abandonQuiz struct{}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case SlideTickMsg:
		return m.handleSlideTick(msg)
	case FeedbackTickMsg:
		return m.handleFeedbackTick(msg)
	case DecksReloadedMsg:
		return m.handleDecksReloaded(msg)
	case action.Msg:
		return m.handleAction(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blink and friends) belongs to the picker's
	// text input.
	if m.screen == ScreenPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.picker.SetSize(msg.Width, msg.Height)
	m.report.SetSize(msg.Width, msg.Height)
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleSlideTick(msg SlideTickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.slideSeq || m.screen != ScreenQuiz {
		return m, nil
	}
	if m.slide.Step() {
		return m, slideTickCmd(m.slideSeq, m.slideEvery)
	}
	return m, nil
}

func (m Model) handleFeedbackTick(msg FeedbackTickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.bannerSeq {
		return m, nil
	}
	next, more := feedback.Advance(m.banner.Phase)
	m.banner.Phase = next
	if more {
		return m, feedbackTickCmd(m.bannerSeq, feedback.Duration(next))
	}
	return m, nil
}

func (m Model) handleDecksReloaded(msg DecksReloadedMsg) (tea.Model, tea.Cmd) {
	owned := make([]deck.Deck, len(msg.Decks))
	for i, d := range msg.Decks {
		owned[i] = *d
	}
	m.picker.SetDecks(owned)
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch act := msg.Action.(type) {
	case deckpicker.Picked:
		return m.startSession(act.Deck)
	case confirm.Result:
		return m.handleConfirmResult(act)
	case helpbindings.Close:
		m.Popups.HideHelp()
		return m, nil
	}
	m.logger.Debug("unhandled action", "source", msg.Source, "type", msg.Action.ActionType())
	return m, nil
}

func (m Model) handleConfirmResult(res confirm.Result) (tea.Model, tea.Cmd) {
	m.Popups.HideConfirm()
	if !res.Confirmed {
		return m, nil
	}

	switch res.Context.(type) {
	case abandonQuiz:
		m.logger.Debug("session abandoned", "deck", m.deck.Title, "at", m.session.CurrentIndex())
		return m.returnToPicker()
	}
	return m, nil
}

func (m Model) returnToPicker() (tea.Model, tea.Cmd) {
	m.session = nil
	m.banner = feedback.State{}
	m.bannerSeq++
	m.screen = ScreenPicker
	return m, tea.Batch(m.picker.Init(), reloadDecksCmd(m.cfg.DeckDirs))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	switch m.screen {
	case ScreenPicker:
		return m.handlePickerKey(msg)
	case ScreenQuiz:
		return m.handleQuizKey(msg)
	case ScreenReport:
		return m.handleReportKey(msg)
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pickerKeys.Resolve(msg.String()) == keymap.ActionQuit {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.quizKeys.Resolve(key) {
	case keymap.ActionQuit:
		message := fmt.Sprintf("Progress on %q will be lost.", m.session.Title())
		m.Popups.ShowConfirm("Abandon quiz?", message, abandonQuiz{})
		return m, nil

	case keymap.ActionHelp:
		m.Popups.ShowHelp([]string{"global", "quiz"})
		return m, nil

	case keymap.ActionToggleSound:
		m.sound.Toggle()
		return m, nil

	case keymap.ActionMoveUp:
		return m.moveSelection(-1)

	case keymap.ActionMoveDown:
		return m.moveSelection(1)

	case keymap.ActionPickOption:
		// Keys "1" through "6" map onto option indexes.
		m.session.Select(int(key[0] - '1'))
		return m, nil

	case keymap.ActionSelect:
		if m.session.Revealed() {
			return m.advanceQuestion()
		}
		return m.submitAnswer()

	case keymap.ActionSkip:
		if m.session.Revealed() {
			return m.advanceQuestion()
		}
		return m.skipQuestion()
	}
	return m, nil
}

func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	if m.session.Revealed() {
		return m, nil
	}

	cur := m.session.Selected()
	if cur < 0 {
		// First press highlights the top option regardless of direction.
		m.session.Select(0)
		return m, nil
	}

	n := len(m.session.Current().Options)
	m.session.Select(min(max(cur+delta, 0), n-1))
	return m, nil
}

func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	if !m.session.Submit() {
		return m, nil // nothing selected yet
	}

	res, _ := m.session.ResultAt(m.session.CurrentIndex())
	correct := res.Outcome == session.Correct

	state := feedback.State{Phase: feedback.PhaseSlideIn}
	if correct {
		state.Kind = feedback.KindCorrect
		state.Streak = m.currentStreak()
		m.sound.Correct()
	} else {
		q := m.session.Current()
		state.Kind = feedback.KindWrong
		state.Answer = q.Options[q.Answer]
		m.sound.Wrong()
	}
	m.banner = state
	m.bannerSeq++

	m.logger.Debug("answer submitted",
		"question", m.session.CurrentIndex(),
		"chosen", res.Chosen,
		"correct", correct)
	return m, feedbackTickCmd(m.bannerSeq, feedback.Duration(feedback.PhaseSlideIn))
}

// currentStreak counts the run of correct answers ending at the current
// question.
func (m Model) currentStreak() int {
	n := 0
	for i := m.session.CurrentIndex(); i >= 0; i-- {
		r, ok := m.session.ResultAt(i)
		if !ok || r.Outcome != session.Correct {
			break
		}
		n++
	}
	return n
}

func (m Model) skipQuestion() (tea.Model, tea.Cmd) {
	q := m.session.Current()
	m.banner = feedback.State{
		Kind:   feedback.KindSkipped,
		Phase:  feedback.PhaseSlideIn,
		Answer: q.Options[q.Answer],
	}
	m.bannerSeq++
	bannerCmd := feedbackTickCmd(m.bannerSeq, feedback.Duration(feedback.PhaseSlideIn))

	// The skipped banner rides over the slide to the next card.
	next, advanceCmd := m.advanceQuestion()
	return next, tea.Batch(bannerCmd, advanceCmd)
}

func (m Model) advanceQuestion() (tea.Model, tea.Cmd) {
	if m.session.Advance() {
		m.slideSeq++
		m.slide.SetTarget(m.session.CurrentIndex())
		return m, slideTickCmd(m.slideSeq, m.slideEvery)
	}
	return m.finishSession()
}

func (m Model) finishSession() (tea.Model, tea.Cmd) {
	m.report.SetSession(m.session)
	m.report.SetSize(m.Width, m.Height)
	m.screen = ScreenReport
	m.banner = feedback.State{}
	m.bannerSeq++
	m.sound.Finish()

	m.logger.Debug("session finished",
		"deck", m.deck.Title,
		"score", m.session.Score(),
		"total", m.session.Total())
	return m, nil
}

func (m Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.reportKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.Popups.ShowHelp([]string{"global", "report"})
		return m, nil

	case keymap.ActionToggleSound:
		m.sound.Toggle()
		return m, nil

	case keymap.ActionRestart:
		return m.startSession(m.deck)

	case keymap.ActionBackToDecks:
		return m.returnToPicker()

	case keymap.ActionMoveUp, keymap.ActionMoveDown,
		keymap.ActionJumpStart, keymap.ActionJumpEnd,
		keymap.ActionPageUp, keymap.ActionPageDown:
		m.report.HandleKey(key)
		return m, nil
	}
	return m, nil
}
