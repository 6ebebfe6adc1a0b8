package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/timedquiz/internal/ui/layout"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Choose  key.Binding
	Submit  key.Binding
	Next    key.Binding
	Restart key.Binding
	History key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "Pick")),
		Choose:  key.NewBinding(key.WithKeys("space", " "), key.WithHelp("Space", "Select")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
		Next:    key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("Enter", "Next")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Restart")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("H", "History")),
	}
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Esc", Description: "Back"})
}
