package util

import "golang.org/x/text/width"

// NormalizeInput folds full-width characters typed with a Japanese IME
// ("１：３０") to their ASCII forms ("1:30").
func NormalizeInput(s string) string {
	return width.Narrow.String(s)
}
