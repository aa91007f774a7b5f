package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/stigoleg/timecalc/internal/mode"
)

// KeyMap defines key bindings for the calculator.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Field navigation
	Next key.Binding
	Prev key.Binding

	// Modes
	DiffMode   key.Binding
	SumMode    key.Binding
	ToggleMode key.Binding

	// Actions
	Clear key.Binding
	Copy  key.Binding
	Break key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		DiffMode: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "time difference"),
		),
		SumMode: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "time total"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "switch mode"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
		),
		Break: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4",
				"alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("f1…f4/alt+1…9", "break shortcut"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// modeKeyMap adapts bindings to the active mode for contextual help.
type modeKeyMap struct {
	keys KeyMap
	mode mode.Mode
}

// ForMode returns a contextual key map implementing help.KeyMap for the given mode.
func (k KeyMap) ForMode(m mode.Mode) help.KeyMap {
	return modeKeyMap{keys: k, mode: m}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s modeKeyMap) ShortHelp() []key.Binding {
	if s.mode == mode.Diff {
		return []key.Binding{s.keys.Next, s.keys.Break, s.keys.ToggleMode, s.keys.Clear, s.keys.ToggleHelp, s.keys.Quit}
	}
	return []key.Binding{s.keys.Next, s.keys.ToggleMode, s.keys.Clear, s.keys.ToggleHelp, s.keys.Quit}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s modeKeyMap) FullHelp() [][]key.Binding {
	actions := []key.Binding{s.keys.Clear, s.keys.Copy}
	if s.mode == mode.Diff {
		actions = append(actions, s.keys.Break)
	}
	return [][]key.Binding{
		{s.keys.Next, s.keys.Prev},
		{s.keys.DiffMode, s.keys.SumMode, s.keys.ToggleMode},
		actions,
		{s.keys.ToggleHelp, s.keys.Quit},
	}
}

// breakIndex maps an f-key or alt+digit key to a zero based shortcut index.
func breakIndex(k string) (int, bool) {
	var d byte
	switch {
	case len(k) == len("f1") && k[0] == 'f':
		d = k[1]
	case len(k) == len("alt+1") && k[:4] == "alt+":
		d = k[4]
	default:
		return 0, false
	}
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '1'), true
}
