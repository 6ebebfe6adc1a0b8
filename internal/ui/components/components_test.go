package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice_CursorClamps(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"a", "b", "c"})

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(specialKey(tea.KeyDown))
	}
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	if m.Current() != "c" {
		t.Errorf("current = %q, want c", m.Current())
	}
}

func TestMultiChoice_NumberKeys(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"a", "b", "c"})

	m, picked := m.Update(keyPress('2'))
	if !picked || m.Current() != "b" {
		t.Errorf("picked = %v current = %q, want true b", picked, m.Current())
	}

	m, picked = m.Update(keyPress('7'))
	if picked || m.Current() != "b" {
		t.Error("expected an out-of-range digit to be ignored")
	}
}

func TestMultiChoice_RevealFreezesCursor(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"a", "b"})
	m.Reveal = true
	m.Correct = "a"
	m.Chosen = "b"

	m, picked := m.Update(specialKey(tea.KeyDown))
	if picked || m.Cursor != 0 {
		t.Error("expected no movement once revealed")
	}
	view := m.View()
	if !strings.Contains(view, "1) ( ) a") || !strings.Contains(view, "2) (•) b") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestButtonRow_FocusAndPress(t *testing.T) {
	var pressed string
	press := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			pressed = name
			return nil
		}
	}
	r := NewButtonRow(
		NewButton("One", true, press("one")),
		NewButton("Two", false, press("two")),
	)

	r, _ = r.Update(specialKey(tea.KeyRight))
	r, _ = r.Update(specialKey(tea.KeyRight))
	if r.Focused != 1 {
		t.Errorf("focused = %d, want 1", r.Focused)
	}
	if r.Buttons[0].Active || !r.Buttons[1].Active {
		t.Error("expected only the focused button active")
	}

	r.Update(specialKey(tea.KeyEnter))
	if pressed != "two" {
		t.Errorf("pressed = %q, want two", pressed)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	full := NewProgressBar("", 1.5, false, 10).View()
	empty := NewProgressBar("", -1, false, 10).View()
	if full == "" || empty == "" {
		t.Error("expected bars to render")
	}
	if !strings.Contains(NewProgressBar("", 0.5, true, 20).View(), "50%") {
		t.Error("expected percent label")
	}
}

func TestMenu_WrapsAndActivates(t *testing.T) {
	var chosen string
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			chosen = label
			return nil
		}}
	}
	m := NewMenu(item("PLAY"), item("HISTORY"), item("EXIT"))

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 2 {
		t.Errorf("selected = %d, want 2 after wrapping up", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("selected = %d, want 0 after wrapping down", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyEnter))
	if chosen != "PLAY" {
		t.Errorf("chosen = %q, want PLAY", chosen)
	}

	m, _ = m.Update(keyPress('2'))
	if chosen != "HISTORY" || m.Selected != 1 {
		t.Errorf("digit 2: chosen = %q selected = %d", chosen, m.Selected)
	}

	chosen = ""
	m.Update(keyPress('9'))
	if chosen != "" {
		t.Error("expected an out-of-range digit to do nothing")
	}

	view := m.View(40)
	if !strings.Contains(view, "▸ HISTORY") || !strings.Contains(view, "EXIT") {
		t.Errorf("unexpected view:\n%s", view)
	}
}
