package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/stigoleg/timecalc/internal/util"
)

// Field names one of the two sum inputs.
type Field string

const (
	FieldA Field = "A"
	FieldB Field = "B"
)

// ErrNoInput is returned by Add when both inputs are blank.
var ErrNoInput = errors.New("no duration entered")

// FieldError reports which sum input failed to parse.
type FieldError struct {
	Field Field
	Err   error
}

// Error returns the error message
func (e *FieldError) Error() string {
	return fmt.Sprintf("time %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying parse error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Message is the text shown under the sum panel for this field.
func (e *FieldError) Message() string {
	if e.Field == FieldA {
		return "時間Aの形式が正しくありません（例：1:30 または 45）"
	}
	return "時間Bの形式が正しくありません（例：0:45 または 90）"
}

// Sum holds the numbers behind a sum-mode result, all in minutes.
type Sum struct {
	A     int `json:"a"`
	B     int `json:"b"`
	Total int `json:"total"`
}

// Add parses both durations and totals them. A blank side counts as zero.
// A is checked before B, so when both are malformed only A is reported.
func Add(a, b string) (Sum, error) {
	if a == "" && b == "" {
		return Sum{}, ErrNoInput
	}

	aMin, errA := util.ParseFreeDuration(a)
	bMin, errB := util.ParseFreeDuration(b)

	if util.IsInvalid(errA) {
		return Sum{}, &FieldError{Field: FieldA, Err: errA}
	}
	if util.IsInvalid(errB) {
		return Sum{}, &FieldError{Field: FieldB, Err: errB}
	}

	// blank sides already parsed as 0
	if aMin > math.MaxInt-bMin {
		return Sum{}, &FieldError{Field: FieldB, Err: &util.ParseError{Input: b, Err: util.ErrInvalid}}
	}
	return Sum{A: aMin, B: bMin, Total: aMin + bMin}, nil
}

// ComputeSum renders the sum-mode result for the raw field values.
func ComputeSum(a, b string) Outcome {
	s, err := Add(a, b)

	var ferr *FieldError
	switch {
	case errors.Is(err, ErrNoInput):
		return Outcome{Result: Result{Label: SumLabel, Main: mainPending, Sub: sumPrompt}}
	case errors.As(err, &ferr):
		return Outcome{
			Result: Result{Label: SumLabel, Main: mainError, Sub: fmt.Sprintf("時間%sを修正してください", ferr.Field)},
			Error:  ferr.Message(),
		}
	}

	total := util.FormatInt(s.Total)
	return Outcome{Result: Result{
		Label: SumLabel,
		Main:  "合計 " + total.Text,
		Sub:   "（" + total.HM + "）",
	}}
}
