// Package mode holds the state machine that decides which calculator is
// active and what each mode's panel currently shows.
package mode

import (
	"fmt"
	"strings"
)

// Mode selects one of the two calculators.
type Mode int

const (
	Diff Mode = iota
	Sum
)

func (m Mode) String() string {
	switch m {
	case Diff:
		return "diff"
	case Sum:
		return "sum"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == Diff || m == Sum
}

// Other returns the mode that is not m.
func (m Mode) Other() Mode {
	if m == Diff {
		return Sum
	}
	return Diff
}

// ParseMode accepts "diff" or "sum" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diff":
		return Diff, nil
	case "sum":
		return Sum, nil
	}
	return Diff, fmt.Errorf("unknown mode %q (expected diff or sum)", s)
}
