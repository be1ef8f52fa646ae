package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the shell's keyboard shortcuts. Component-local keys
// (category cycling, list navigation) live with their components.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Compose    key.Binding
	Save       key.Binding
	Category   key.Binding
	Cancel     key.Binding
	Locate     key.Binding
	ToggleMode key.Binding
	SelectMode key.Binding

	// Application
	FocusNext  key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		Compose: key.NewBinding(
			key.WithKeys("n", "i"),
			key.WithHelp("n", "new entry"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "save entry"),
		),
		Category: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("Ctrl+G", "next category"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back to list"),
		),
		Locate: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "attach/remove location"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "personal/public"),
		),
		SelectMode: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p/P", "go personal/public"),
		),

		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch pane"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compose, k.ToggleMode, k.FocusNext, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.FocusNext},
		{k.Compose, k.Save, k.Category, k.Locate, k.Cancel},
		{k.ToggleMode, k.SelectMode, k.ToggleHelp, k.Quit, k.ForceQuit},
	}
}
