package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	ForceQuit   key.Binding
	Quit        key.Binding
	Onboarding  key.Binding
	Login       key.Binding
	Next        key.Binding
	Back        key.Binding
	Submit      key.Binding
	SwitchField key.Binding
	Cancel      key.Binding
	NewNote     key.Binding
	Search      key.Binding
	Save        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Onboarding:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "start onboarding")),
		Login:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		Next:        key.NewBinding(key.WithKeys("right", "l", "enter"), key.WithHelp("→", "next")),
		Back:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "back")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log in")),
		SwitchField: key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab", "switch field")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NewNote:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

// helpLine renders bindings as "key desc" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
