package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocChannel(t *testing.T) {
	assert.Equal(t, "doc:42", DocChannel(42))
}

func TestPipelineEventBuilders(t *testing.T) {
	e := NewPipelineEvent(EventTypeStepComplete, 7).
		WithStep("title").
		WithData(map[string]any{"value": "Invoice"}).
		WithMessage("done")

	assert.Equal(t, EventTypeStepComplete, e.Type)
	assert.Equal(t, 7, e.DocID)
	assert.Equal(t, "title", e.Step)
	assert.Equal(t, "Invoice", e.Data["value"])
	assert.Equal(t, "done", e.Message)
	assert.False(t, e.Timestamp.IsZero())
}

func TestInjectDBEventID(t *testing.T) {
	event := NewPipelineEvent(EventTypeStepStart, 7).WithStep("ocr")
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 123)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(123), m["db_event_id"])
	assert.Equal(t, "step_start", m["type"])
	assert.Equal(t, "ocr", m["step"])
	_, truncated := m["truncated"]
	assert.False(t, truncated)
}

func TestInjectDBEventID_TruncatesOversizedPayload(t *testing.T) {
	// NOTIFY payloads are capped at 8000 bytes; oversized events collapse
	// to a routing stub the client resolves via catchup.
	event := NewPipelineEvent(EventTypeStepComplete, 7).
		WithData(map[string]any{"content": strings.Repeat("x", 9000)})
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 456)
	require.NoError(t, err)
	assert.Less(t, len(out), 1000)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(456), m["db_event_id"])
	assert.Equal(t, "step_complete", m["type"])
	assert.Equal(t, float64(7), m["doc_id"])
	assert.NotContains(t, m, "data")
}

func TestInjectDBEventID_InvalidJSON(t *testing.T) {
	_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
	assert.Error(t, err)
}
