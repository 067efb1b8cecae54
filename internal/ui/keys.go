package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Step      key.Binding
	ShadeUp   key.Binding
	ShadeDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Step:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next frame")),
		ShadeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "shade")),
		ShadeDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "unshade")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Step, k.ShadeUp, k.ShadeDown}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
