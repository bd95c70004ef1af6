package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// catchupLimit caps how many missed events one subscription replays. A
// client further behind than this should reload state over REST.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a channel arrives.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscriber event buffer. A subscriber that
// falls this far behind starts losing events; db_event_id gaps tell the
// client to re-catchup.
const subscriberBuffer = 256

// CatchupEvent holds one persisted event returned by the catchup query.
type CatchupEvent struct {
	ID      int64
	Payload map[string]any
}

// CatchupQuerier queries persisted events for catchup.
type CatchupQuerier interface {
	CatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// Subscriber is one NDJSON stream client attached to a channel. Events
// arrive on Events() as marshaled JSON lines-to-be.
type Subscriber struct {
	ID      string
	Channel string
	events  chan []byte
	closed  sync.Once
	done    chan struct{}
}

// Events returns the subscriber's event stream. The channel closes when
// the subscription is removed.
func (s *Subscriber) Events() <-chan []byte {
	return s.events
}

func (s *Subscriber) close() {
	s.closed.Do(func() {
		close(s.done)
		close(s.events)
	})
}

// SubscriberManager tracks NDJSON subscribers and their channel
// subscriptions. Each process has one instance; the NotifyListener feeds
// it cross-process notifications.
type SubscriberManager struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	channels    map[string]map[string]bool // channel → subscriber ids

	catchupQuerier CatchupQuerier

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// NewSubscriberManager creates a SubscriberManager.
func NewSubscriberManager(catchupQuerier CatchupQuerier) *SubscriberManager {
	return &SubscriberManager{
		subscribers:    make(map[string]*Subscriber),
		channels:       make(map[string]map[string]bool),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *SubscriberManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe attaches a new subscriber to a channel. LISTEN is established
// synchronously before the catchup query runs, so no event published
// between catchup and LISTEN can be lost. Events missed since sinceID
// (0 = all persisted events) are queued onto the subscriber first.
func (m *SubscriberManager) Subscribe(ctx context.Context, channel string, sinceID int64) (*Subscriber, error) {
	sub := &Subscriber{
		ID:      uuid.New().String(),
		Channel: channel,
		events:  make(chan []byte, subscriberBuffer),
		done:    make(chan struct{}),
	}

	m.mu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][sub.ID] = true
	m.subscribers[sub.ID] = sub
	m.mu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			err := l.Subscribe(listenCtx, channel)
			cancel()
			if err != nil {
				m.Unsubscribe(sub)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	if err := m.catchup(ctx, sub, sinceID); err != nil {
		m.Unsubscribe(sub)
		return nil, err
	}
	return sub, nil
}

// Unsubscribe detaches a subscriber and stops LISTEN when it was the
// channel's last one.
func (m *SubscriberManager) Unsubscribe(sub *Subscriber) {
	m.mu.Lock()
	delete(m.subscribers, sub.ID)
	lastOnChannel := false
	if subs, exists := m.channels[sub.Channel]; exists {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(m.channels, sub.Channel)
			lastOnChannel = true
		}
	}
	m.mu.Unlock()

	sub.close()

	if !lastOnChannel {
		return
	}
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	channel := sub.Channel
	go func() {
		// Re-check before UNLISTEN so a rapid unsubscribe/resubscribe
		// cycle does not drop an active LISTEN.
		m.mu.RLock()
		_, resubscribed := m.channels[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// Broadcast delivers a notification payload to every subscriber of the
// channel. Sends never block: a subscriber with a full buffer loses the
// event and recovers via db_event_id catchup.
func (m *SubscriberManager) Broadcast(channel string, payload []byte) {
	m.mu.RLock()
	ids, exists := m.channels[channel]
	if !exists {
		m.mu.RUnlock()
		return
	}
	subs := make([]*Subscriber, 0, len(ids))
	for id := range ids {
		if sub, ok := m.subscribers[id]; ok {
			subs = append(subs, sub)
		}
	}
	m.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
		case sub.events <- payload:
		default:
			slog.Warn("Dropping event for slow subscriber",
				"subscriber_id", sub.ID, "channel", channel)
		}
	}
}

// SubscriberCount returns the number of subscribers on a channel.
func (m *SubscriberManager) SubscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.channels[channel])
}

// catchup queues persisted events since sinceID onto a fresh subscriber.
// Stored payloads carry no db_event_id (it is injected at NOTIFY time),
// so it is added here from the row id.
func (m *SubscriberManager) catchup(ctx context.Context, sub *Subscriber, sinceID int64) error {
	if m.catchupQuerier == nil {
		return nil
	}

	evts, err := m.catchupQuerier.CatchupEvents(ctx, sub.Channel, sinceID, catchupLimit+1)
	if err != nil {
		return fmt.Errorf("catchup query failed: %w", err)
	}

	hasMore := len(evts) > catchupLimit
	if hasMore {
		evts = evts[:catchupLimit]
	}

	for _, evt := range evts {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		select {
		case sub.events <- payload:
		default:
			// Catchup alone overflowed the buffer; the overflow marker
			// below tells the client to reload.
			hasMore = true
		}
	}

	if hasMore {
		marker, _ := json.Marshal(map[string]any{
			"type":     "catchup.overflow",
			"channel":  sub.Channel,
			"has_more": true,
		})
		select {
		case sub.events <- marker:
		default:
		}
	}
	return nil
}
