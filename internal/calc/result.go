// Package calc implements the two calculators behind timecalc: worked time
// between two clock times, and the total of two durations.
package calc

// Result is what a calculation shows: a heading, the main line and a detail line.
type Result struct {
	Label string `json:"label"`
	Main  string `json:"main"`
	Sub   string `json:"sub"`
}

// Outcome pairs a Result with the field error text for the mode, if any.
type Outcome struct {
	Result Result `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the outcome carries a field error.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

const (
	DiffLabel = "時間差分（開始〜終了）"
	SumLabel  = "時間の合計（A + B）"

	mainPlaceholder = "ここに結果が表示されます"
	mainPending     = "結果未計算"
	mainError       = "エラー"

	diffPrompt = "開始時刻と終了時刻を入力してください"
	sumPrompt  = "時間Aまたは時間Bを入力してください"
)

// DiffPlaceholder is shown before anything has been computed in diff mode.
func DiffPlaceholder() Result {
	return Result{Label: DiffLabel, Main: mainPlaceholder, Sub: diffPrompt}
}

// SumPlaceholder is shown before anything has been computed in sum mode.
func SumPlaceholder() Result {
	return Result{Label: SumLabel, Main: mainPlaceholder, Sub: sumPrompt}
}
