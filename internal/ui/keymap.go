package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the local key bindings. Navigation keys produce the same
// messages the backing process sends, so both go through one code path.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Execute  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "previous")),
		Next:     key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "next")),
		Execute:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y", "y"), key.WithHelp("y", "copy")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Execute, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Execute, k.Copy},
		{k.Help, k.Quit},
	}
}
