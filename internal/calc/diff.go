package calc

import (
	"fmt"

	"github.com/stigoleg/timecalc/internal/util"
)

// MinutesPerDay is used when the end time falls on the next day.
const MinutesPerDay = 24 * 60

const diffZeroSub = "開始と終了が同じか、正しい範囲になっていません"

// Diff holds the numbers behind a diff-mode result, all in minutes.
type Diff struct {
	Start    int  `json:"start"`
	End      int  `json:"end"`
	Duration int  `json:"duration"`
	Break    int  `json:"break"`
	Worked   int  `json:"worked"`
	Wrapped  bool `json:"wrapped"`
}

// Difference computes the stay between start and end and the worked time
// after the break. An end earlier than the start is taken to be on the next
// day. The break is clamped to the stay. ok is false when start or end is
// missing or malformed.
func Difference(start, end, brk string) (d Diff, ok bool) {
	startMin, err := util.ParseClockTime(start)
	if err != nil {
		return Diff{}, false
	}
	endMin, err := util.ParseClockTime(end)
	if err != nil {
		return Diff{}, false
	}

	d = Diff{Start: startMin, End: endMin}
	if endMin >= startMin {
		d.Duration = endMin - startMin
	} else {
		d.Duration = endMin + MinutesPerDay - startMin
		d.Wrapped = true
	}
	if d.Duration <= 0 {
		return d, true
	}

	d.Break = min(util.ParseBreakMinutes(brk), d.Duration)
	d.Worked = d.Duration - d.Break
	return d, true
}

// ComputeDiff renders the diff-mode result for the raw field values. It never
// sets the error text: a missing or malformed start or end produces the same
// prompt to fill in both fields.
func ComputeDiff(start, end, brk string) Outcome {
	d, ok := Difference(start, end, brk)
	if !ok {
		return Outcome{Result: Result{Label: DiffLabel, Main: mainPending, Sub: diffPrompt}}
	}
	if d.Duration <= 0 {
		return Outcome{Result: Result{Label: DiffLabel, Main: util.FormatInt(0).Text, Sub: diffZeroSub}}
	}

	stay := util.FormatInt(d.Duration)
	worked := util.FormatInt(d.Worked)
	return Outcome{Result: Result{
		Label: DiffLabel,
		Main:  "実働 " + worked.Text,
		Sub:   fmt.Sprintf("滞在 %s（%s） / 実働 %s", stay.Text, stay.HM, worked.HM),
	}}
}
