package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"１：３０", "1:30"},
		{"０９:００", "09:00"},
		{"４５", "45"},
		{"1:30", "1:30"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInput(tt.in))
		})
	}
}
