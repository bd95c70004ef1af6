package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-ai/inkwell/pkg/dms"
)

func fieldOfType(dataType string) dms.CustomField {
	return dms.CustomField{ID: 1, Name: "Test Field", DataType: dataType}
}

func selectField(options ...dms.SelectOption) dms.CustomField {
	f := dms.CustomField{ID: 2, Name: "Category", DataType: "select"}
	f.ExtraData.SelectOptions = options
	return f
}

func TestValidateFieldValue(t *testing.T) {
	tests := []struct {
		name     string
		dataType string
		value    string
		valid    bool
	}{
		{"string accepts anything", "string", "free text", true},
		{"url http", "url", "http://example.com/doc", true},
		{"url https", "url", "https://example.com", true},
		{"url rejects other schemes", "url", "ftp://example.com", false},
		{"url rejects prose", "url", "see the website", false},
		{"date iso", "date", "2024-03-01", true},
		{"date rejects german format", "date", "01.03.2024", false},
		{"boolean true", "boolean", "true", true},
		{"boolean mixed case", "boolean", "True", true},
		{"boolean rejects prose", "boolean", "probably", false},
		{"integer", "integer", "42", true},
		{"integer rejects decimals", "integer", "42.5", false},
		{"float", "float", "42.5", true},
		{"float rejects words", "float", "forty-two", false},
		{"monetary with currency", "monetary", "EUR123.45", true},
		{"monetary bare number", "monetary", "123.45", true},
		{"monetary rejects lowercase currency", "monetary", "eur123.45", false},
		{"monetary rejects currency only", "monetary", "EUR", false},
		{"unknown type rejected", "documentlink", "7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldValue(fieldOfType(tt.dataType), tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateFieldValue_Select(t *testing.T) {
	field := selectField(
		dms.SelectOption{ID: "opt-1", Label: "Insurance"},
		dms.SelectOption{ID: "opt-2", Label: "Utilities"},
	)

	assert.NoError(t, validateFieldValue(field, "Insurance"))
	assert.NoError(t, validateFieldValue(field, "utilities"))

	err := validateFieldValue(field, "Groceries")
	require.Error(t, err)
	// The error doubles as loop feedback, so it must name the options.
	assert.Contains(t, err.Error(), "Insurance")
	assert.Contains(t, err.Error(), "Utilities")
}

func TestEncodeFieldValue(t *testing.T) {
	tests := []struct {
		name     string
		field    dms.CustomField
		value    string
		expected string
	}{
		{"string stays a JSON string", fieldOfType("string"), "hello", `"hello"`},
		{"boolean becomes JSON bool", fieldOfType("boolean"), "True", `true`},
		{"integer becomes JSON number", fieldOfType("integer"), "42", `42`},
		{"float becomes JSON number", fieldOfType("float"), "42.5", `42.5`},
		{"monetary stays a string", fieldOfType("monetary"), "EUR123.45", `"EUR123.45"`},
		{"date stays a string", fieldOfType("date"), "2024-03-01", `"2024-03-01"`},
		{
			"select encodes the option id not the label",
			selectField(dms.SelectOption{ID: "opt-1", Label: "Insurance"}),
			"insurance",
			`"opt-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := encodeFieldValue(tt.field, tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(raw))
		})
	}
}

func TestEncodeFieldValue_RejectsInvalid(t *testing.T) {
	_, err := encodeFieldValue(fieldOfType("integer"), "not a number")
	assert.Error(t, err)
}
