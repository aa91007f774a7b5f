package mode

import (
	"log"
	"strconv"

	"github.com/stigoleg/timecalc/internal/calc"
)

// DefaultBreakShortcuts are the one-key break lengths offered in diff mode.
var DefaultBreakShortcuts = []int{0, 15, 30, 60}

// Panel is what one mode currently displays.
type Panel struct {
	Result calc.Result
	Error  string
}

// DiffInputs are the raw field values of diff mode.
type DiffInputs struct {
	Start string
	End   string
	Break string
}

// SumInputs are the raw field values of sum mode.
type SumInputs struct {
	A string
	B string
}

// Controller owns the current mode, both modes' raw inputs and both panels.
// It is not safe for concurrent use; every call is expected from the single
// goroutine delivering UI events.
type Controller struct {
	current Mode
	panels  [2]Panel

	diff DiffInputs
	sum  SumInputs

	breaks []int
}

// Option configures a Controller.
type Option func(*Controller)

// WithBreakShortcuts replaces DefaultBreakShortcuts.
func WithBreakShortcuts(minutes []int) Option {
	return func(c *Controller) {
		c.breaks = append([]int(nil), minutes...)
	}
}

// New returns a controller in diff mode with both panels on their placeholders.
func New(opts ...Option) *Controller {
	c := &Controller{
		current: Diff,
		breaks:  append([]int(nil), DefaultBreakShortcuts...),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset(Diff)
	c.reset(Sum)
	return c
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.current
}

// Active returns the panel of the active mode.
func (c *Controller) Active() Panel {
	return c.panels[c.current]
}

// Panel returns the panel of m, visible or not.
func (c *Controller) Panel(m Mode) Panel {
	if !m.valid() {
		return Panel{}
	}
	return c.panels[m]
}

// DiffInputs returns the diff-mode field values.
func (c *Controller) DiffInputs() DiffInputs {
	return c.diff
}

// SumInputs returns the sum-mode field values.
func (c *Controller) SumInputs() SumInputs {
	return c.sum
}

// BreakShortcuts returns the configured break lengths in minutes.
func (c *Controller) BreakShortcuts() []int {
	return append([]int(nil), c.breaks...)
}

// SwitchMode makes target the active mode and resets its panel to the
// placeholder. The inputs are kept and not recomputed, and the panel being
// left keeps its last result. Selecting the active mode again does nothing;
// the return value reports whether a transition happened.
func (c *Controller) SwitchMode(target Mode) bool {
	if target == c.current || !target.valid() {
		return false
	}
	log.Printf("mode: %s -> %s", c.current, target)
	c.current = target
	c.reset(target)
	return true
}

// Toggle switches to the other mode.
func (c *Controller) Toggle() {
	c.SwitchMode(c.current.Other())
}

// SetDiffInputs replaces all diff-mode fields and recomputes diff mode.
func (c *Controller) SetDiffInputs(in DiffInputs) Panel {
	c.diff = in
	return c.computeDiff()
}

// SetStart updates the start time and recomputes diff mode.
func (c *Controller) SetStart(v string) Panel {
	c.diff.Start = v
	return c.computeDiff()
}

// SetEnd updates the end time and recomputes diff mode.
func (c *Controller) SetEnd(v string) Panel {
	c.diff.End = v
	return c.computeDiff()
}

// SetBreak updates the break minutes and recomputes diff mode.
func (c *Controller) SetBreak(v string) Panel {
	c.diff.Break = v
	return c.computeDiff()
}

// ApplyBreak overwrites the break field with minutes and recomputes diff mode.
func (c *Controller) ApplyBreak(minutes int) Panel {
	return c.SetBreak(strconv.Itoa(minutes))
}

// ApplyBreakShortcut applies the i-th configured break length. It reports
// false when i is out of range.
func (c *Controller) ApplyBreakShortcut(i int) (Panel, bool) {
	if i < 0 || i >= len(c.breaks) {
		return c.panels[Diff], false
	}
	return c.ApplyBreak(c.breaks[i]), true
}

// SetSumInputs replaces both sum-mode fields and recomputes sum mode.
func (c *Controller) SetSumInputs(in SumInputs) Panel {
	c.sum = in
	return c.computeSum()
}

// SetA updates duration A and recomputes sum mode.
func (c *Controller) SetA(v string) Panel {
	c.sum.A = v
	return c.computeSum()
}

// SetB updates duration B and recomputes sum mode.
func (c *Controller) SetB(v string) Panel {
	c.sum.B = v
	return c.computeSum()
}

// Recompute recalculates the active mode from its current inputs.
func (c *Controller) Recompute() Panel {
	if c.current == Sum {
		return c.computeSum()
	}
	return c.computeDiff()
}

// Clear empties the inputs of m and puts its panel back on the placeholder.
func (c *Controller) Clear(m Mode) {
	switch m {
	case Diff:
		c.diff = DiffInputs{}
	case Sum:
		c.sum = SumInputs{}
	default:
		return
	}
	log.Printf("mode: cleared %s", m)
	c.reset(m)
}

func (c *Controller) computeDiff() Panel {
	out := calc.ComputeDiff(c.diff.Start, c.diff.End, c.diff.Break)
	c.panels[Diff] = Panel{Result: out.Result, Error: out.Error}
	return c.panels[Diff]
}

func (c *Controller) computeSum() Panel {
	out := calc.ComputeSum(c.sum.A, c.sum.B)
	c.panels[Sum] = Panel{Result: out.Result, Error: out.Error}
	return c.panels[Sum]
}

func (c *Controller) reset(m Mode) {
	p := Panel{Result: calc.DiffPlaceholder()}
	if m == Sum {
		p.Result = calc.SumPlaceholder()
	}
	c.panels[m] = p
}
