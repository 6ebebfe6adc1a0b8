package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/timedquiz/internal/session"
	"github.com/abhisek/timedquiz/internal/ui/components"
	"github.com/abhisek/timedquiz/internal/ui/theme"
)

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	if s.session.Completed() {
		return fmt.Sprintf("Score %d/%d", s.session.Score(), s.session.Total())
	}
	return fmt.Sprintf("Q %d/%d  Score %d", s.session.Index()+1, s.session.Total(), s.session.Score())
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.session.Phase() {
	case sess.PhaseCompleted:
		body = s.renderCompleted(cw)
	case sess.PhaseFeedback:
		body = s.renderFeedback(cw)
	default:
		body = s.renderQuestion(cw)
	}
	return components.CabinetFrame(body, width, height)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(cw))
	b.WriteString("\n\n")

	remaining := s.session.TimeRemaining()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("Time left: %d seconds", remaining)))
	b.WriteString("\n")
	bar := components.NewProgressBar("", s.session.TimerFraction(), false, cw).
		WithFill(theme.TimerFill(s.session.TimerFraction()))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())

	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.hint))
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *QuizScreen) renderFeedback(cw int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(cw))
	b.WriteString("\n\n")
	b.WriteString(s.choices.View())
	b.WriteString("\n")

	if s.session.LastCorrect() {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render(
			"Incorrect. The correct answer is: " + s.session.Current().CorrectAnswer))
	}
	b.WriteString("\n\n")

	label := "Next Question"
	if s.session.Index() == s.session.Total()-1 {
		label = "See Results"
	}
	b.WriteString(components.ArcadeButton(label, true, components.MenuButtonWidth))

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *QuizScreen) renderCompleted(cw int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	b.WriteString(center.Render(theme.Title.Render("Quiz Complete!")))
	b.WriteString("\n\n")

	score, total := s.session.Score(), s.session.Total()
	b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(
		fmt.Sprintf("Your Score: %d / %d", score, total))))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(score)/float64(total), true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(s.renderResults(cw))
	b.WriteString("\n")
	b.WriteString(center.Render(s.renderSaveStatus()))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.actions.View()))

	return b.String()
}

// renderResults lists each question with its verdict.
func (s *QuizScreen) renderResults(cw int) string {
	var lines []string
	for _, r := range s.session.Results() {
		q := s.session.Question(r.Index)
		var mark string
		switch r.Verdict {
		case sess.VerdictCorrect:
			mark = theme.Correct.Render("✓")
		case sess.VerdictIncorrect:
			mark = theme.Incorrect.Render("✗")
		default:
			mark = lipgloss.NewStyle().Foreground(theme.Warning).Render("⏱")
		}
		prompt := q.Prompt
		if runes := []rune(prompt); cw > 11 && len(runes) > cw-8 {
			prompt = string(runes[:cw-11]) + "..."
		}
		line := fmt.Sprintf("%s %2d. %s", mark, r.Index+1, prompt)
		lines = append(lines, line)

		if r.Verdict == sess.VerdictTimedOut {
			lines = append(lines, theme.Hint.Render("       timed out"))
		} else if r.Verdict == sess.VerdictIncorrect {
			lines = append(lines, theme.Hint.Render("       answer: "+q.CorrectAnswer))
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}

func (s *QuizScreen) renderSaveStatus() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case s.saving:
		return dim.Render("Saving attempt...")
	case s.saveErr != nil:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("History unavailable. This attempt was not saved.")
	case s.saved != nil:
		return dim.Render("Saved to history.")
	default:
		return ""
	}
}

func (s *QuizScreen) renderInfoLine(cw int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
		fmt.Sprintf("Question %d of %d", s.session.Index()+1, s.session.Total()))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Score: %d", s.session.Score()))

	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
}
