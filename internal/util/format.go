package util

import (
	"fmt"
	"math"
)

// Formatted is a minute count rendered for display.
type Formatted struct {
	// Text is the long form, e.g. "1時間30分".
	Text string `json:"text"`
	// HM is the zero-padded form, e.g. "01:30". Hours are not wrapped at 24.
	HM string `json:"hm"`
}

// FormatMinutes renders a minute count. Negative, NaN and infinite totals are
// shown as zero and fractional totals are rounded to the nearest minute.
func FormatMinutes(totalMinutes float64) Formatted {
	if math.IsNaN(totalMinutes) || math.IsInf(totalMinutes, 0) || totalMinutes < 0 {
		totalMinutes = 0
	}
	total := int(math.Floor(totalMinutes + 0.5))

	hours := total / 60
	mins := total % 60

	return Formatted{
		Text: fmt.Sprintf("%d時間%d分", hours, mins),
		HM:   fmt.Sprintf("%02d:%02d", hours, mins),
	}
}

// FormatInt is FormatMinutes for whole minutes.
func FormatInt(minutes int) Formatted {
	return FormatMinutes(float64(minutes))
}
