package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/timecalc/internal/mode"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	var b strings.Builder

	b.WriteString(Current.Title.Render("timecalc"))
	b.WriteString("\n\n")
	b.WriteString(tabsView(m.Mode()))
	b.WriteString("\n\n")

	for _, f := range fieldsFor(m.Mode()) {
		b.WriteString(fieldView(m, f))
		b.WriteString("\n")
	}
	if m.Mode() == mode.Diff {
		b.WriteString(breakChipsView(m.Controller.BreakShortcuts()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(resultView(m))
	b.WriteString("\n")

	if p := m.Controller.Active(); p.Error != "" {
		b.WriteString("\n" + Current.Error.Render(p.Error))
	}
	if m.Status != "" {
		b.WriteString("\n" + Current.Status.Render(m.Status))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForMode(m.Mode()))))
	return b.String()
}

func tabsView(active mode.Mode) string {
	tabs := []struct {
		mode  mode.Mode
		title string
	}{
		{mode.Diff, "時間差分"},
		{mode.Sum, "時間の合計"},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.mode == active {
			parts = append(parts, Current.ActiveTab.Render(t.title))
		} else {
			parts = append(parts, Current.Tab.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func fieldView(m Model, f Field) string {
	label := Current.Label.Render(f.label())
	cursor := "  "
	if f == m.Focus {
		label = Current.ActiveLabel.Render(f.label())
		cursor = "> "
	}
	return cursor + label + m.Inputs[f].View()
}

func breakChipsView(shortcuts []int) string {
	chips := make([]string, 0, len(shortcuts))
	for i, minutes := range shortcuts {
		chips = append(chips, Current.Chip.Render("alt+"+string(rune('1'+i))+" "+breakLabel(minutes)))
	}
	return "  " + Current.Help.Render("休憩:") + strings.Join(chips, "")
}

func resultView(m Model) string {
	r := m.Controller.Active().Result
	content := lipgloss.JoinVertical(lipgloss.Left,
		Current.ResultLabel.Render(r.Label),
		Current.ResultMain.Render(r.Main),
		Current.ResultSub.Render(r.Sub),
	)
	return Current.ResultBox.Render(content)
}

func helpView(m Model) string {
	help := `timecalc help

Modes:
  時間差分    worked time between a start and end time, minus a break
  時間の合計  total of two durations ("1:30" or "45")

Examples:
  開始 22:00, 終了 06:00   end before start counts as the next day
  休憩 120 with a 30 minute stay   break is capped at the stay
  A 1:30, B 45             total 2時間15分 (02:15)

Usage:
  timecalc                       # interactive TUI
  timecalc --mode sum            # start in the total mode
  timecalc diff --start 09:00 --end 17:30 --break 60
  timecalc sum 1:30 45

Press '?' or 'esc' to close help`

	full := m.help
	full.ShowAll = true
	return Current.Help.Render(help) + "\n\n" + Current.Help.Render(full.View(m.keys.ForMode(m.Mode())))
}
