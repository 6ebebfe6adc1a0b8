package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Button is a pressable action rendered as an arcade button.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update presses the button on enter or space while it is active.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			if b.OnPress != nil {
				return b, b.OnPress()
			}
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	return ArcadeButton(b.Label, b.Active, buttonWidth)
}

const buttonWidth = 20

// ButtonRow is a horizontal group of buttons with one focused at a time.
type ButtonRow struct {
	Buttons []Button
	Focused int
}

// NewButtonRow creates a row with the first button focused.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	r.focus(0)
	return r
}

func (r *ButtonRow) focus(i int) {
	if len(r.Buttons) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.Buttons) {
		i = len(r.Buttons) - 1
	}
	r.Focused = i
	for j := range r.Buttons {
		r.Buttons[j].Active = j == i
	}
}

// Update moves focus with left/right/tab and forwards the rest to the
// focused button.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "shift+tab":
			r.focus(r.Focused - 1)
			return r, nil
		case "right", "tab":
			r.focus(r.Focused + 1)
			return r, nil
		}
	}
	if len(r.Buttons) == 0 {
		return r, nil
	}
	var cmd tea.Cmd
	r.Buttons[r.Focused], cmd = r.Buttons[r.Focused].Update(msg)
	return r, cmd
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	views := make([]string, 0, len(r.Buttons)*2)
	for i, b := range r.Buttons {
		if i > 0 {
			views = append(views, strings.Repeat(" ", 2))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
