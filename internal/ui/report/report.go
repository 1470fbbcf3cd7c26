// Package report renders the end-of-quiz results screen: a score summary
// followed by a scrollable per-question list of what was answered.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/osmandemiroz/cram/internal/icons"
	"github.com/osmandemiroz/cram/internal/session"
	"github.com/osmandemiroz/cram/internal/ui"
	"github.com/osmandemiroz/cram/internal/ui/cursor"
	"github.com/osmandemiroz/cram/internal/ui/render"
	"github.com/osmandemiroz/cram/internal/ui/styles"
)

// answerColWidth caps each answer shown in the right column.
const answerColWidth = 14

// Model is the results screen.
type Model struct {
	ui.Base
	title      string
	results    []session.Result
	score      int
	total      int
	bestStreak int
	streakEnd  int // play position where the best streak ended
	cursor     cursor.Cursor
}

// New creates an empty results screen.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetSession loads the finished session into the screen.
func (m *Model) SetSession(s *session.Session) {
	m.title = s.Title()
	m.results = s.Results()
	m.score = s.Score()
	m.total = s.Total()
	m.bestStreak, m.streakEnd = s.BestStreak()
	m.cursor.Reset()
}

// HandleKey handles list navigation and reports whether the key was used.
func (m *Model) HandleKey(key string) bool {
	return m.cursor.HandleKey(key, len(m.results), m.listHeight())
}

// Grade maps a score to the word shown on the summary line.
func Grade(score, total int) string {
	if total == 0 {
		return ""
	}
	switch pct := score * 100 / total; {
	case pct >= 90:
		return "Excellent"
	case pct >= 75:
		return "Great"
	case pct >= 50:
		return "Good"
	case pct >= 25:
		return "Shaky"
	default:
		return "Rough"
	}
}

func (m *Model) listHeight() int {
	overhead := 6
	if m.bestStreak >= 1 {
		overhead = 7
	}
	return max(m.ListHeight(overhead), 1)
}

// View renders the screen at the size set via SetSize.
func (m *Model) View() string {
	if m.total == 0 || m.Width() <= 0 {
		return ""
	}

	t := styles.T()
	w := m.Width()

	var b strings.Builder
	b.WriteString(render.Center(t.S().Title.Render("Quiz Complete"), w))
	b.WriteString("\n\n")

	pct := m.score * 100 / m.total
	summary := fmt.Sprintf("%d/%d · %d%% · %s", m.score, m.total, pct, Grade(m.score, m.total))
	b.WriteString(render.Center(t.S().Base.Bold(true).Render(summary), w))
	b.WriteString("\n")

	if m.bestStreak >= 1 {
		streak := fmt.Sprintf("Best streak: %d · ended on the %s question",
			m.bestStreak, humanize.Ordinal(m.streakEnd+1))
		b.WriteString(render.Center(t.S().Subtle.Render(streak), w))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	listHeight := m.listHeight()
	start, end := m.cursor.VisibleRange(len(m.results), listHeight)
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, w))
		b.WriteString("\n")
	}
	for i := end - start; i < listHeight; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("j/k scroll · enter continue · q quit"))

	return b.String()
}

func (m *Model) renderRow(i, width int) string {
	r := m.results[i]
	t := styles.T()

	marker := "  "
	if i == m.cursor.Pos() {
		marker = icons.Marker() + " "
	}

	numW := len(fmt.Sprint(m.total))
	num := t.S().Subtle.Render(fmt.Sprintf("%*d.", numW, i+1))

	var icon, right string
	switch r.Outcome {
	case session.Correct:
		icon = lipgloss.NewStyle().Foreground(t.Success).Render(icons.Check())
		right = t.S().Success.Render(m.answerText(r.Chosen, r))
	case session.Wrong:
		icon = lipgloss.NewStyle().Foreground(t.Error).Render(icons.Cross())
		right = t.S().Error.Render(m.answerText(r.Chosen, r)) +
			t.S().Subtle.Render(" / ") +
			t.S().Success.Render(m.answerText(r.Question.Answer, r))
	default:
		icon = lipgloss.NewStyle().Foreground(t.Warning).Render(icons.Skipped())
		right = t.S().Subtle.Render("—") +
			t.S().Subtle.Render(" / ") +
			t.S().Success.Render(m.answerText(r.Question.Answer, r))
	}

	iconW := lipgloss.Width(icon)
	promptW := width - lipgloss.Width(marker) - numW - iconW - lipgloss.Width(right) - 4
	if promptW < 8 {
		right = ""
		promptW = width - lipgloss.Width(marker) - numW - iconW - 3
	}
	prompt := render.TruncateEllipsis(render.Sanitize(r.Question.Prompt), max(promptW, 1))

	promptStyle := t.S().Base
	if i == m.cursor.Pos() {
		promptStyle = t.S().Selected
	}

	left := marker + num + " " + icon + " " + promptStyle.Render(prompt)
	if right == "" {
		return left
	}
	return render.Row(left, right, width)
}

func (m *Model) answerText(idx int, r session.Result) string {
	if idx < 0 || idx >= len(r.Question.Options) {
		return "—"
	}
	return render.TruncateEllipsis(render.Sanitize(r.Question.Options[idx]), answerColWidth)
}
