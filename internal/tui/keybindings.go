package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the sort view. It implements help.KeyMap.
type keyMap struct {
	Down key.Binding
	Up   key.Binding
	Jump key.Binding
	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next sort")),
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous sort")),
		Jump: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "choose sort")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Jump},
		{k.Help, k.Quit},
	}
}
