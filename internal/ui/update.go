package ui

import (
	"fmt"
	"log"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timecalc/internal/mode"
	"github.com/stigoleg/timecalc/internal/util"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
		return m, cmd
	}

	if m.ShowHelp {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.ToggleHelp), keyMsg.String() == "esc":
			m.ShowHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.ToggleHelp):
		m.ShowHelp = true
		return m, nil

	case key.Matches(keyMsg, m.keys.DiffMode):
		return m.switchMode(mode.Diff)

	case key.Matches(keyMsg, m.keys.SumMode):
		return m.switchMode(mode.Sum)

	case key.Matches(keyMsg, m.keys.ToggleMode):
		return m.switchMode(m.Mode().Other())

	case key.Matches(keyMsg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(keyMsg, m.keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(keyMsg, m.keys.Clear):
		return m.clear(), nil

	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyResult(), nil

	case key.Matches(keyMsg, m.keys.Break):
		if i, ok := breakIndex(keyMsg.String()); ok {
			return m.applyBreak(i), nil
		}
		return m, nil
	}

	before := m.Inputs[m.Focus].Value()
	var cmd tea.Cmd
	m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
	if after := m.Inputs[m.Focus].Value(); after != before {
		m.fieldChanged(m.Focus, after)
	}
	return m, cmd
}

// fieldChanged forwards an edited field to the controller, which recomputes
// the mode the field belongs to.
func (m *Model) fieldChanged(f Field, raw string) {
	v := util.NormalizeInput(raw)
	m.Status = ""

	switch f {
	case FieldStart:
		m.Controller.SetStart(v)
	case FieldEnd:
		m.Controller.SetEnd(v)
	case FieldBreak:
		m.Controller.SetBreak(v)
	case FieldA:
		m.Controller.SetA(v)
	case FieldB:
		m.Controller.SetB(v)
	}
}

func (m Model) switchMode(target mode.Mode) (Model, tea.Cmd) {
	if !m.Controller.SwitchMode(target) {
		return m, nil
	}
	m.Status = ""
	return m.focus(fieldsFor(target)[0])
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	fields := fieldsFor(m.Mode())
	idx := 0
	for i, f := range fields {
		if f == m.Focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return m.focus(fields[idx])
}

func (m Model) focus(f Field) (Model, tea.Cmd) {
	m.Inputs[m.Focus].Blur()
	m.Focus = f
	return m, m.Inputs[f].Focus()
}

// clear empties the active mode's inputs and resets its result.
func (m Model) clear() Model {
	current := m.Mode()
	for _, f := range fieldsFor(current) {
		m.Inputs[f].Reset()
	}
	m.Controller.Clear(current)
	m.Status = ""
	m, _ = m.focus(fieldsFor(current)[0])
	return m
}

// applyBreak fills the break field from the i-th shortcut. Shortcuts only
// exist in diff mode.
func (m Model) applyBreak(i int) Model {
	if m.Mode() != mode.Diff {
		return m
	}
	if _, ok := m.Controller.ApplyBreakShortcut(i); !ok {
		return m
	}
	m.Inputs[FieldBreak].SetValue(m.Controller.DiffInputs().Break)
	m.Status = ""
	return m
}

func (m Model) copyResult() Model {
	r := m.Controller.Active().Result
	text := fmt.Sprintf("%s\n%s\n%s", r.Label, r.Main, r.Sub)
	if err := m.copyText(text); err != nil {
		log.Printf("ui: copy failed: %v", err)
		m.Status = fmt.Sprintf("Copy failed: %v", err)
		return m
	}
	m.Status = "Copied result"
	return m
}

// breakLabel renders a shortcut chip such as "15分".
func breakLabel(minutes int) string {
	return strconv.Itoa(minutes) + "分"
}
