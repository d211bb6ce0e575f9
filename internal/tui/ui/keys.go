package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding

	// Actions
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding

	// Period selection
	Day        key.Binding
	Week       key.Binding
	Month      key.Binding
	Year       key.Binding
	Recent     key.Binding
	PrevPeriod key.Binding
	NextPeriod key.Binding

	// View-specific
	PrevRoot   key.Binding
	NextRoot   key.Binding
	DepthUp    key.Binding
	DepthDown  key.Binding
	ToggleMode key.Binding
	Themes     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		// Tab navigation
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "stats"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "chart"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tree"),
		),
		Tab4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "suggest"),
		),
		Tab5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "config"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		// Period selection
		Day: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "day"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Recent: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "recent"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous period"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next period"),
		),

		// View-specific
		PrevRoot: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous root"),
		),
		NextRoot: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next root"),
		),
		DepthUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "deeper"),
		),
		DepthDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shallower"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "score mode"),
		),
		Themes: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "themes"),
		),
	}
}
