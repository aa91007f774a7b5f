package ui

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timecalc/internal/mode"
)

// Options controls how the TUI starts.
type Options struct {
	Mode           mode.Mode
	BreakShortcuts []int
	AltScreen      bool
	Version        string
}

// Model holds the current state of the UI: the text inputs and the mode
// controller they feed.
type Model struct {
	Controller *mode.Controller
	Inputs     [fieldCount]textinput.Model
	Focus      Field
	ShowHelp   bool
	Status     string
	Version    string

	keys KeyMap
	help help.Model

	copyText func(string) error
}

// InitialModel returns the initial model for the TUI in diff mode.
func InitialModel() Model {
	return InitialModelWithOptions(Options{Mode: mode.Diff})
}

// InitialModelWithOptions returns a model that starts in diff mode and then
// switches to opts.Mode if it differs.
func InitialModelWithOptions(opts Options) Model {
	var ctrlOpts []mode.Option
	if len(opts.BreakShortcuts) > 0 {
		ctrlOpts = append(ctrlOpts, mode.WithBreakShortcuts(opts.BreakShortcuts))
	}

	m := Model{
		Controller: mode.New(ctrlOpts...),
		Version:    opts.Version,
		keys:       DefaultKeys(),
		help:       NewHelpModel(),
		copyText:   clipboard.WriteAll,
	}
	for f := Field(0); f < fieldCount; f++ {
		m.Inputs[f] = newInput(f)
	}
	// a shortcut must fit the break field or SetValue would cut it short
	for _, minutes := range m.Controller.BreakShortcuts() {
		if n := len(strconv.Itoa(minutes)); n > m.Inputs[FieldBreak].CharLimit {
			m.Inputs[FieldBreak].CharLimit = n
		}
	}

	m.Controller.SwitchMode(opts.Mode)
	m.Focus = fieldsFor(m.Controller.Current())[0]
	m.Inputs[m.Focus].Focus()
	return m
}

func newInput(f Field) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 10
	ti.Width = 10
	ti.TextStyle = Current.InputText
	ti.PlaceholderStyle = Current.Placeholder

	switch f {
	case FieldStart:
		ti.Placeholder = "09:00"
		ti.CharLimit = 5
	case FieldEnd:
		ti.Placeholder = "17:30"
		ti.CharLimit = 5
	case FieldBreak:
		ti.Placeholder = "60"
		ti.CharLimit = 4
	case FieldA:
		ti.Placeholder = "1:30"
	case FieldB:
		ti.Placeholder = "45"
	}
	return ti
}

// SetVersion sets the version shown in the footer.
func (m *Model) SetVersion(v string) {
	m.Version = v
}

// Mode returns the active mode.
func (m Model) Mode() mode.Mode {
	return m.Controller.Current()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
