package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Redraw  key.Binding
	Mode    key.Binding
	Animate key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Redraw: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "redraw"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "pie/donut"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "rotate right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Redraw, k.Mode, k.Animate, k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
