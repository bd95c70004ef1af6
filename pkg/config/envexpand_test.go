package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_DMS_URL", "http://dms.local:8000")
	t.Setenv("TEST_DMS_PORT", "8000")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "base_url: {{.TEST_DMS_URL}}",
			expected: "base_url: http://dms.local:8000",
		},
		{
			name:     "multiple variables",
			input:    "addr: {{.TEST_DMS_URL}}:{{.TEST_DMS_PORT}}",
			expected: "addr: http://dms.local:8000:8000",
		},
		{
			name:     "missing variable expands empty",
			input:    "token: {{.TEST_DOES_NOT_EXIST_XYZ}}",
			expected: "token: ",
		},
		{
			name:     "plain yaml passes through",
			input:    "base_url: http://literal",
			expected: "base_url: http://literal",
		},
		{
			name:     "malformed template returns original",
			input:    "value: {{.unclosed",
			expected: "value: {{.unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
