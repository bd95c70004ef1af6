package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		valid    bool
	}{
		{"bare id", "42", 42, true},
		{"id with whitespace", "  42  ", 42, true},
		{"candidate list echo", "42: Electricity Invoice March", 42, true},
		{"echo with colon in title", "42: Invoice: March", 42, true},
		{"prose answer", "the first one", 0, false},
		{"negative id", "-3", 0, false},
		{"zero id", "0", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseLinkTarget(tt.input)
			if !tt.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestIsNoneAnswer(t *testing.T) {
	assert.True(t, isNoneAnswer("none"))
	assert.True(t, isNoneAnswer("  NONE  "))
	assert.True(t, isNoneAnswer("No"))
	assert.True(t, isNoneAnswer("no link"))
	assert.True(t, isNoneAnswer("null"))

	assert.False(t, isNoneAnswer("42"))
	assert.False(t, isNoneAnswer("nothing matches, maybe 42"))
	assert.False(t, isNoneAnswer(""))
}

func TestTagDeltaString(t *testing.T) {
	assert.Equal(t, "no changes", tagDelta{}.String())
	assert.Equal(t, "add: invoice, 2024", tagDelta{ToAdd: []string{"invoice", "2024"}}.String())
	assert.Equal(t, "add: invoice; remove: draft",
		tagDelta{ToAdd: []string{"invoice"}, ToRemove: []string{"draft"}}.String())

	assert.True(t, tagDelta{Reasoning: "nothing fits"}.empty())
	assert.False(t, tagDelta{ToRemove: []string{"draft"}}.empty())
}
