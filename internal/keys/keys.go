// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// MonitorKeyMap defines the keybindings for the terminal monitor.
type MonitorKeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Refresh     key.Binding
	ClearEvents key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// Monitor holds the monitor's default keybindings.
var Monitor = MonitorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous window"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next window"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ClearEvents: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear events"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k MonitorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.ClearEvents, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k MonitorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},             // Navigation
		{k.Refresh, k.ClearEvents}, // Actions
		{k.Help, k.Quit},           // General
	}
}
