package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rdesai/drill/internal/session"
	"github.com/rdesai/drill/internal/ui/components"
	"github.com/rdesai/drill/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(s.errMsg))
	case s.phase == phaseSummary:
		return s.renderSummary(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *StudyScreen) renderQuestion(width, height int) string {
	q, ok := s.sess.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	progress := components.NewSessionProgress(s.sess.Cursor+1, len(s.sess.Questions), width-8)
	b.WriteString("  " + progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch s.mode {
	case session.ModeFlashcard:
		b.WriteString(s.renderFlashcard(width))
	case session.ModeFillBlank:
		b.WriteString(s.renderFillBlank(width, q.Prompt))
	default:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.choice.View()))
	}

	if s.phase == phaseFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	if s.persistErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  " + s.persistErr))
	}

	return b.String()
}

func (s *StudyScreen) renderFlashcard(width int) string {
	q, _ := s.sess.Current()

	card := theme.Card.Width(min(width-8, 70))

	front := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)
	content := front

	if s.revealed || s.phase == phaseFeedback {
		answer := theme.Correct.Render(q.CorrectOption())
		content += "\n\n" + answer
		if q.Explanation != "" {
			content += "\n" + theme.Hint.Render(q.Explanation)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card.Render(content))
}

func (s *StudyScreen) renderFillBlank(width int, prompt string) string {
	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt)

	input := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())

	return question + "\n\n" + input
}

func (s *StudyScreen) renderFeedback(width int) string {
	q, _ := s.sess.Current()

	var verdict string
	if s.wasRight {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.") + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render("Answer: "+q.CorrectOption())
	}

	out := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict)
	if q.Explanation != "" && s.mode != session.ModeFlashcard {
		out += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render(q.Explanation))
	}
	if !s.wasRight {
		out += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render("You'll see this one again soon."))
	}
	return out
}

func (s *StudyScreen) renderSummary(width, height int) string {
	accuracy := 0
	if s.answered > 0 {
		accuracy = (s.correct*100 + s.answered/2) / s.answered
	}

	lines := []string{
		theme.Title.Render("Session complete"),
		"",
		fmt.Sprintf("Answered  %d", s.answered),
		fmt.Sprintf("Correct   %s", theme.Correct.Render(fmt.Sprintf("%d", s.correct))),
		fmt.Sprintf("Missed    %s", theme.Incorrect.Render(fmt.Sprintf("%d", s.answered-s.correct))),
		fmt.Sprintf("Accuracy  %d%%", accuracy),
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
