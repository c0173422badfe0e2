package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the picker's own key bindings. Navigation and filtering
// are handled by the list component.
type KeyMap struct {
	Play       key.Binding
	Stop       key.Binding
	ToggleTrim key.Binding
	Random     key.Binding
	Info       key.Binding
	Back       key.Binding
	Refresh    key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.ToggleTrim, k.Random, k.Help, k.Quit}
}

// FullHelp returns the picker bindings grouped for the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Stop, k.ToggleTrim, k.Random},
		{k.Info, k.Back, k.Refresh},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Stop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		ToggleTrim: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle trim")),
		Random:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random")),
		Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "trim timing")),
		Back:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Refresh:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rescan")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}
