package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Electricity Invoice", "electricity invoice"},
		{"  Electricity   Invoice  ", "electricity invoice"},
		{"ELECTRICITY\tINVOICE", "electricity invoice"},
		{"already normal", "already normal"},
		{"", ""},
		{"   ", ""},
		{"Stadtwerke München", "stadtwerke münchen"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}
