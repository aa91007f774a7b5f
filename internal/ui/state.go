package ui

import "github.com/stigoleg/timecalc/internal/mode"

// Field identifies one of the text inputs.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
	FieldBreak
	FieldA
	FieldB

	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldStart:
		return "Start"
	case FieldEnd:
		return "End"
	case FieldBreak:
		return "Break"
	case FieldA:
		return "A"
	case FieldB:
		return "B"
	default:
		return "Unknown"
	}
}

// label is the caption shown next to the input.
func (f Field) label() string {
	switch f {
	case FieldStart:
		return "開始時刻"
	case FieldEnd:
		return "終了時刻"
	case FieldBreak:
		return "休憩（分）"
	case FieldA:
		return "時間A"
	case FieldB:
		return "時間B"
	default:
		return ""
	}
}

var (
	diffFields = []Field{FieldStart, FieldEnd, FieldBreak}
	sumFields  = []Field{FieldA, FieldB}
)

// fieldsFor returns the inputs shown in m, in tab order.
func fieldsFor(m mode.Mode) []Field {
	if m == mode.Sum {
		return sumFields
	}
	return diffFields
}
