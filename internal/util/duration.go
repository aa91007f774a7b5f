package util

import "strings"

// ParseFreeDuration converts a duration typed as "h:mm" or as bare minutes
// into a minute count.
//
// Supported formats:
//   - hours and minutes: "1:30", "0:45", "12:05"
//   - minutes only: "45", "90"
//
// Blank input yields ErrEmpty. More than one colon, an unparseable part, a
// negative value, a minute above 59 or an hour count too large to express in
// minutes yield ErrInvalid.
func ParseFreeDuration(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, emptyInput(value)
	}

	if strings.Contains(trimmed, ":") {
		parts := strings.Split(trimmed, ":")
		if len(parts) > 2 {
			return 0, invalidInput(value)
		}
		h, okH := LeadingInt(parts[0])
		m, okM := LeadingInt(parts[1])
		if !okH || !okM {
			return 0, invalidInput(value)
		}
		total, ok := hoursAndMinutes(h, m)
		if !ok {
			return 0, invalidInput(value)
		}
		return total, nil
	}

	minutes, ok := LeadingInt(trimmed)
	if !ok || minutes < 0 {
		return 0, invalidInput(value)
	}
	return minutes, nil
}

// ParseBreakMinutes reads a break length in minutes. Blank, unparseable and
// non-positive input all count as no break.
func ParseBreakMinutes(value string) int {
	if value == "" {
		return 0
	}
	minutes, ok := LeadingInt(value)
	if !ok || minutes <= 0 {
		return 0
	}
	return minutes
}
