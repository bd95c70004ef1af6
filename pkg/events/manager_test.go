package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuerier serves canned catchup events.
type stubQuerier struct {
	events []CatchupEvent
}

func (q *stubQuerier) CatchupEvents(_ context.Context, _ string, sinceID int64, limit int) ([]CatchupEvent, error) {
	var out []CatchupEvent
	for _, e := range q.events {
		if e.ID > sinceID {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func drain(sub *Subscriber) []map[string]any {
	var out []map[string]any
	for {
		select {
		case payload, ok := <-sub.Events():
			if !ok {
				return out
			}
			var m map[string]any
			if json.Unmarshal(payload, &m) == nil {
				out = append(out, m)
			}
		default:
			return out
		}
	}
}

func TestSubscribe_Catchup(t *testing.T) {
	querier := &stubQuerier{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"type": "step_start", "doc_id": float64(7)}},
		{ID: 2, Payload: map[string]any{"type": "step_complete", "doc_id": float64(7)}},
	}}
	m := NewSubscriberManager(querier)

	sub, err := m.Subscribe(context.Background(), DocChannel(7), 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	got := drain(sub)
	require.Len(t, got, 2)
	// db_event_id is injected from the row id during catchup.
	assert.Equal(t, float64(1), got[0]["db_event_id"])
	assert.Equal(t, float64(2), got[1]["db_event_id"])
	assert.Equal(t, "step_start", got[0]["type"])
}

func TestSubscribe_CatchupSinceID(t *testing.T) {
	querier := &stubQuerier{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"type": "a"}},
		{ID: 2, Payload: map[string]any{"type": "b"}},
	}}
	m := NewSubscriberManager(querier)

	sub, err := m.Subscribe(context.Background(), GlobalDocsChannel, 1)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	got := drain(sub)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0]["type"])
}

func TestSubscribe_CatchupOverflowMarker(t *testing.T) {
	var evts []CatchupEvent
	for i := 1; i <= catchupLimit+10; i++ {
		evts = append(evts, CatchupEvent{ID: int64(i), Payload: map[string]any{"n": i}})
	}
	m := NewSubscriberManager(&stubQuerier{events: evts})

	sub, err := m.Subscribe(context.Background(), GlobalDocsChannel, 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	got := drain(sub)
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, "catchup.overflow", last["type"])
	assert.Equal(t, true, last["has_more"])
}

func TestBroadcast(t *testing.T) {
	m := NewSubscriberManager(nil)
	ctx := context.Background()

	sub1, err := m.Subscribe(ctx, GlobalDocsChannel, 0)
	require.NoError(t, err)
	sub2, err := m.Subscribe(ctx, DocChannel(7), 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub1)
	defer m.Unsubscribe(sub2)

	assert.Equal(t, 1, m.SubscriberCount(GlobalDocsChannel))
	assert.Equal(t, 1, m.SubscriberCount(DocChannel(7)))

	m.Broadcast(GlobalDocsChannel, []byte(`{"type":"x"}`))
	assert.Len(t, drain(sub1), 1)
	assert.Empty(t, drain(sub2))

	// Broadcasting to a channel with no subscribers is a no-op.
	m.Broadcast(DocChannel(99), []byte(`{"type":"y"}`))
}

func TestBroadcast_SlowSubscriberDropsEvents(t *testing.T) {
	m := NewSubscriberManager(nil)

	sub, err := m.Subscribe(context.Background(), GlobalDocsChannel, 0)
	require.NoError(t, err)
	defer m.Unsubscribe(sub)

	// Overfill the buffer; the overflow is dropped rather than blocking.
	for i := 0; i < subscriberBuffer+20; i++ {
		m.Broadcast(GlobalDocsChannel, []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}
	got := drain(sub)
	assert.Len(t, got, subscriberBuffer)
}

func TestUnsubscribe_ClosesEventChannel(t *testing.T) {
	m := NewSubscriberManager(nil)

	sub, err := m.Subscribe(context.Background(), DocChannel(1), 0)
	require.NoError(t, err)

	m.Unsubscribe(sub)
	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Zero(t, m.SubscriberCount(DocChannel(1)))

	// Unsubscribing twice is safe.
	m.Unsubscribe(sub)
}
