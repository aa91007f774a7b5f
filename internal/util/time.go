package util

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseClockTime converts a time-of-day string such as "09:05" or "9:5" into
// minutes since midnight.
//
// An empty value yields ErrEmpty. Fewer than two colon-separated parts, an
// unparseable hour or minute, a negative component or a minute above 59 yield
// ErrInvalid, as does an hour too large to express in minutes. Hours above 23
// pass through and parts after the second are ignored.
func ParseClockTime(value string) (int, error) {
	if value == "" {
		return 0, emptyInput(value)
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 {
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

// maxHours is the largest hour count whose minute total still fits an int.
const maxHours = (math.MaxInt - 59) / 60

// hoursAndMinutes combines an hour and a minute part into minutes. Negative
// parts, a minute above 59 and hours that would overflow are rejected.
func hoursAndMinutes(h, m int) (int, bool) {
	if h < 0 || m < 0 || m > 59 || h > maxHours {
		return 0, false
	}
	return h*60 + m, true
}

// LeadingInt parses the integer at the start of s. Leading whitespace and a
// single sign are allowed and anything after the digits is ignored, so "45分"
// gives 45 and "1.5" gives 1. It fails when no digit follows or the value
// overflows an int.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
