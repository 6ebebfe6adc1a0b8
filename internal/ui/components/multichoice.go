package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timedquiz/internal/ui/theme"
)

// MultiChoice renders a prompt with numbered answer options and tracks a
// cursor. It does not own the selection: the caller passes the chosen
// answer in and decides what selecting means.
type MultiChoice struct {
	Prompt  string
	Options []string
	Cursor  int

	// Chosen is the currently selected answer text, empty for none.
	Chosen string

	// Reveal marks Correct in green and a wrong Chosen in red.
	Reveal  bool
	Correct string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with up/down (or k/j). A digit key 1-9 jumps the
// cursor to that option and reports picked=true.
func (m MultiChoice) Update(msg tea.Msg) (mc MultiChoice, picked bool) {
	if m.Reveal {
		return m, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 && n <= len(m.Options) {
			m.Cursor = n - 1
			return m, true
		}
	}

	return m, false
}

// Current returns the option under the cursor.
func (m MultiChoice) Current() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor]
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Reveal {
			prefix = "▸ "
		}
		mark := "( )"
		if opt == m.Chosen {
			mark = "(•)"
		}

		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Reveal && opt == m.Correct:
			style = theme.Correct
		case m.Reveal && opt == m.Chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt == m.Chosen:
			style = theme.Selected
		case i == m.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
