// Package session tracks the state of one quiz run through a deck.
//
// A session is a plain value-semantics state machine: the app calls Select,
// Submit, and Advance from its update loop, and the widgets read the
// accessors when rendering. Nothing here does I/O; a session lives and dies
// with the program.
package session

import (
	"math/rand/v2"

	"github.com/osmandemiroz/cram/internal/deck"
)

// Outcome describes how one question ended.
type Outcome int

const (
	Unanswered Outcome = iota
	Correct
	Wrong
	Skipped
)

// Result pairs a question with what the player did.
type Result struct {
	Question deck.Question
	Chosen   int // option index, -1 when skipped or unanswered
	Outcome  Outcome
}

// Session walks a deck one question at a time.
type Session struct {
	deck     *deck.Deck
	order    []int // play position -> deck question index
	current  int   // play position
	selected int   // option index on the current question, -1 for none
	revealed bool
	finished bool
	results  []Result
}

// New starts a session over d, optionally shuffling the question order.
func New(d *deck.Deck, shuffle bool) *Session {
	order := make([]int, len(d.Questions))
	for i := range order {
		order[i] = i
	}
	if shuffle {
		rand.Shuffle(len(order), func(i, j int) { //nolint:gosec // crypto not needed for question order
			order[i], order[j] = order[j], order[i]
		})
	}

	results := make([]Result, len(order))
	for i, qi := range order {
		results[i] = Result{Question: d.Questions[qi], Chosen: -1}
	}

	return &Session{
		deck:     d,
		order:    order,
		selected: -1,
		results:  results,
	}
}

// Title returns the deck title.
func (s *Session) Title() string {
	return s.deck.Title
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.order)
}

// CurrentIndex returns the current play position, 0-based.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Current returns the question at the current play position.
func (s *Session) Current() deck.Question {
	q, _ := s.QuestionAt(s.current)
	return q
}

// QuestionAt returns the question at play position i.
func (s *Session) QuestionAt(i int) (deck.Question, bool) {
	if i < 0 || i >= len(s.order) {
		return deck.Question{}, false
	}
	return s.deck.Questions[s.order[i]], true
}

// Selected returns the selected option index, -1 when none.
func (s *Session) Selected() int {
	return s.selected
}

// Revealed reports whether the current question's answer has been shown.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Finished reports whether every question has been resolved.
func (s *Session) Finished() bool {
	return s.finished
}

// Select picks an option on the current question. Out-of-range indexes and
// calls after the reveal are ignored.
func (s *Session) Select(i int) {
	if s.revealed || s.finished {
		return
	}
	if i < 0 || i >= len(s.Current().Options) {
		return
	}
	s.selected = i
}

// Submit reveals the current question and records the outcome. It returns
// true only on the call that performs the reveal: with no selection, after
// the reveal, or after the session finished it is a no-op.
func (s *Session) Submit() bool {
	if s.revealed || s.finished || s.selected < 0 {
		return false
	}

	s.revealed = true
	r := &s.results[s.current]
	r.Chosen = s.selected
	if s.selected == s.Current().Answer {
		r.Outcome = Correct
	} else {
		r.Outcome = Wrong
	}
	return true
}

// Advance moves to the next question. An unrevealed question is recorded as
// skipped. Returns false when this advance finished the session.
func (s *Session) Advance() bool {
	if s.finished {
		return false
	}

	if !s.revealed {
		r := &s.results[s.current]
		r.Chosen = -1
		r.Outcome = Skipped
	}

	s.selected = -1
	s.revealed = false

	if s.current+1 >= len(s.order) {
		s.finished = true
		return false
	}
	s.current++
	return true
}

// ResultAt returns the result at play position i.
func (s *Session) ResultAt(i int) (Result, bool) {
	if i < 0 || i >= len(s.results) {
		return Result{}, false
	}
	return s.results[i], true
}

// Results returns all results in play order. Positions not yet reached have
// Outcome Unanswered.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int {
	n := 0
	for _, r := range s.results {
		if r.Outcome == Correct {
			n++
		}
	}
	return n
}

// BestStreak returns the length of the longest run of correct answers and
// the play position where it ended. A session with no correct answers
// returns (0, -1).
func (s *Session) BestStreak() (length, end int) {
	best, bestEnd := 0, -1
	run := 0
	for i, r := range s.results {
		if r.Outcome == Correct {
			run++
			if run > best {
				best = run
				bestEnd = i
			}
		} else {
			run = 0
		}
	}
	return best, bestEnd
}
