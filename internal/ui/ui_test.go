package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timecalc/internal/calc"
	"github.com/stigoleg/timecalc/internal/mode"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, m)
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = Update(tea.KeyMsg{Type: t}, m)
	return m
}

func altDigit(m Model, d rune) Model {
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{d}, Alt: true}, m)
	return m
}

func TestInitialModel(t *testing.T) {
	m := InitialModel()
	if m.Mode() != mode.Diff {
		t.Error("expected initial mode to be diff")
	}
	if m.Focus != FieldStart {
		t.Errorf("expected focus on start, got %v", m.Focus)
	}
	if m.Controller.Active().Result != calc.DiffPlaceholder() {
		t.Error("expected diff placeholder result")
	}
	if m.ShowHelp {
		t.Error("expected help to be hidden")
	}
}

func TestInitialModelWithSumMode(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Sum, BreakShortcuts: []int{0, 10}})
	if m.Mode() != mode.Sum {
		t.Fatalf("expected sum mode, got %v", m.Mode())
	}
	if m.Focus != FieldA {
		t.Errorf("expected focus on A, got %v", m.Focus)
	}
	if got := m.Controller.BreakShortcuts(); len(got) != 2 || got[1] != 10 {
		t.Errorf("unexpected break shortcuts %v", got)
	}
}

func TestDiffTyping(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "17:30")
	m = press(m, tea.KeyTab)
	m = typeText(m, "60")

	if m.Focus != FieldBreak {
		t.Errorf("expected focus on break, got %v", m.Focus)
	}
	got := m.Controller.Active().Result
	if got.Main != "実働 7時間30分" {
		t.Errorf("main = %q, want %q", got.Main, "実働 7時間30分")
	}

	view := View(m)
	for _, want := range []string{"時間差分", "実働 7時間30分", "滞在 8時間30分（08:30） / 実働 07:30", "休憩"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestFullWidthInput(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Sum})
	m = typeText(m, "１：３０")

	if got := m.Controller.Active().Result.Main; got != "合計 1時間30分" {
		t.Errorf("main = %q, want %q", got, "合計 1時間30分")
	}
}

func TestFocusWraps(t *testing.T) {
	m := InitialModel()
	m = press(m, tea.KeyShiftTab)
	if m.Focus != FieldBreak {
		t.Errorf("shift+tab from first field should wrap to break, got %v", m.Focus)
	}
	m = press(m, tea.KeyTab)
	if m.Focus != FieldStart {
		t.Errorf("tab from last field should wrap to start, got %v", m.Focus)
	}
}

func TestSwitchModeKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyType
		start    mode.Mode
		wantMode mode.Mode
		wantFoc  Field
	}{
		{name: "ctrl+s selects sum", key: tea.KeyCtrlS, start: mode.Diff, wantMode: mode.Sum, wantFoc: FieldA},
		{name: "ctrl+d selects diff", key: tea.KeyCtrlD, start: mode.Sum, wantMode: mode.Diff, wantFoc: FieldStart},
		{name: "ctrl+t toggles", key: tea.KeyCtrlT, start: mode.Diff, wantMode: mode.Sum, wantFoc: FieldA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := InitialModelWithOptions(Options{Mode: tt.start})
			m = press(m, tt.key)
			if m.Mode() != tt.wantMode {
				t.Errorf("mode = %v, want %v", m.Mode(), tt.wantMode)
			}
			if m.Focus != tt.wantFoc {
				t.Errorf("focus = %v, want %v", m.Focus, tt.wantFoc)
			}
		})
	}
}

func TestReselectingActiveModeKeepsResult(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "12:00")
	before := m.Controller.Active()

	// edit the field without going through Update, so nothing recomputes
	m.Inputs[FieldEnd].SetValue("18:00")
	m = press(m, tea.KeyCtrlD)

	if m.Controller.Active() != before {
		t.Errorf("result changed on no-op switch: %+v -> %+v", before, m.Controller.Active())
	}
	if m.Focus != FieldEnd {
		t.Errorf("focus moved on no-op switch, got %v", m.Focus)
	}
}

func TestSwitchResetsTargetOnly(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "12:00")
	diffPanel := m.Controller.Panel(mode.Diff)

	m = press(m, tea.KeyCtrlS)
	if m.Controller.Panel(mode.Diff) != diffPanel {
		t.Error("hidden diff panel should keep its last result")
	}
	m = typeText(m, "abc")
	if m.Controller.Active().Error == "" {
		t.Fatal("expected an error for A")
	}

	m = press(m, tea.KeyCtrlD)
	if m.Controller.Active().Result != calc.DiffPlaceholder() {
		t.Errorf("diff panel should be back on its placeholder, got %+v", m.Controller.Active().Result)
	}
	if m.Inputs[FieldStart].Value() != "09:00" {
		t.Errorf("start input should be kept, got %q", m.Inputs[FieldStart].Value())
	}
	if m.Controller.Panel(mode.Sum).Error == "" {
		t.Error("hidden sum panel should keep its error")
	}
}

func TestSumErrorView(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Sum})
	m = typeText(m, "abc")
	m = press(m, tea.KeyTab)
	m = typeText(m, "30")

	view := View(m)
	if !strings.Contains(view, "時間Aの形式が正しくありません") {
		t.Error("expected view to show the A error")
	}
	if !strings.Contains(view, "エラー") {
		t.Error("expected view to show the error result")
	}
}

func TestBreakShortcut(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "18:00")
	m = altDigit(m, '4')

	if got := m.Inputs[FieldBreak].Value(); got != "60" {
		t.Errorf("break input = %q, want %q", got, "60")
	}
	if got := m.Controller.Active().Result.Main; got != "実働 8時間0分" {
		t.Errorf("main = %q, want %q", got, "実働 8時間0分")
	}

	// out of range shortcut does nothing
	m = altDigit(m, '9')
	if got := m.Inputs[FieldBreak].Value(); got != "60" {
		t.Errorf("break input = %q after unknown shortcut", got)
	}
}

func TestBreakShortcutFunctionKeys(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "18:00")

	m = press(m, tea.KeyF2)
	if got := m.Inputs[FieldBreak].Value(); got != "15" {
		t.Errorf("break input after f2 = %q, want %q", got, "15")
	}
	m = press(m, tea.KeyF4)
	if got := m.Controller.Active().Result.Main; got != "実働 8時間0分" {
		t.Errorf("main after f4 = %q, want %q", got, "実働 8時間0分")
	}
}

func TestWideBreakShortcutFitsField(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Diff, BreakShortcuts: []int{12345}})
	m = altDigit(m, '1')

	input := m.Inputs[FieldBreak].Value()
	if want := m.Controller.DiffInputs().Break; input != want {
		t.Errorf("break input = %q, controller has %q", input, want)
	}
	if input != "12345" {
		t.Errorf("break input = %q, want %q", input, "12345")
	}
}

func TestBreakShortcutIgnoredInSumMode(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Sum})
	m = altDigit(m, '2')
	if m.Controller.DiffInputs().Break != "" {
		t.Error("break shortcut should not apply outside diff mode")
	}
}

func TestClear(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "09:00")
	m = press(m, tea.KeyTab)
	m = typeText(m, "10:00")
	m = press(m, tea.KeyCtrlL)

	for _, f := range diffFields {
		if m.Inputs[f].Value() != "" {
			t.Errorf("%v input not cleared", f)
		}
	}
	if m.Controller.Active().Result != calc.DiffPlaceholder() {
		t.Error("expected placeholder after clear")
	}
	if m.Focus != FieldStart {
		t.Errorf("focus = %v, want Start", m.Focus)
	}
}

func TestCopyResult(t *testing.T) {
	m := InitialModelWithOptions(Options{Mode: mode.Sum})
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m = typeText(m, "1:30")
	m = press(m, tea.KeyCtrlY)

	want := "時間の合計（A + B）\n合計 1時間30分\n（01:30）"
	if copied != want {
		t.Errorf("copied %q, want %q", copied, want)
	}
	if m.Status != "Copied result" {
		t.Errorf("status = %q", m.Status)
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = press(m, tea.KeyCtrlY)
	if !strings.Contains(m.Status, "no clipboard") {
		t.Errorf("status = %q, want copy failure", m.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m := InitialModel()
	m = typeText(m, "?")
	if !m.ShowHelp {
		t.Fatal("expected help to be shown")
	}
	if m.Inputs[FieldStart].Value() != "" {
		t.Error("'?' should not be typed into the field")
	}
	if !strings.Contains(View(m), "timecalc help") {
		t.Error("expected help view")
	}

	m = press(m, tea.KeyEsc)
	if m.ShowHelp {
		t.Error("esc should close help")
	}
}

func TestQuit(t *testing.T) {
	m := InitialModel()
	_, cmd := Update(tea.KeyMsg{Type: tea.KeyCtrlC}, m)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestBreakIndex(t *testing.T) {
	tests := []struct {
		key    string
		want   int
		wantOK bool
	}{
		{"alt+1", 0, true},
		{"alt+9", 8, true},
		{"f1", 0, true},
		{"f4", 3, true},
		{"f10", 0, false},
		{"fx", 0, false},
		{"alt+0", 0, false},
		{"ctrl+1", 0, false},
		{"1", 0, false},
	}
	for _, tt := range tests {
		got, ok := breakIndex(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("breakIndex(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
