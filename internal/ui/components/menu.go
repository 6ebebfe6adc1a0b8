package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MenuButtonWidth is the fixed width of every menu button.
const MenuButtonWidth = 22

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

// Menu is a vertical stack of arcade buttons. Focus wraps around at both
// ends; a digit key activates the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
	keys     menuKeys
}

// NewMenu creates a menu with the first item focused.
func NewMenu(items ...MenuItem) Menu {
	return Menu{
		Items: items,
		keys: menuKeys{
			Up:     key.NewBinding(key.WithKeys("up", "k")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Choose: key.NewBinding(key.WithKeys("enter", "space", " ")),
		},
	}
}

// Update moves focus or runs the chosen item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case key.Matches(kmsg, m.keys.Down):
		m.Selected = (m.Selected + 1) % len(m.Items)
	case key.Matches(kmsg, m.keys.Choose):
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if act := m.Items[m.Selected].Action; act != nil {
		return act()
	}
	return nil
}

// View renders the buttons centered in width cw.
func (m Menu) View(cw int) string {
	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		buttons[i] = ArcadeButton(item.Label, i == m.Selected, MenuButtonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}
