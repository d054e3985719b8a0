package use_cases

import (
	"context"
	"sync"

	"github.com/virtutask/virtutask-api/internal/realtime"
)

var _ realtime.Broadcaster = (*MockBroadcaster)(nil)

type Published struct {
	Channel string
	Event   string
	Payload any
}

// MockBroadcaster zeichnet jede Veröffentlichung auf.
type MockBroadcaster struct {
	mu        sync.Mutex
	Published []Published
}

func (m *MockBroadcaster) Publish(_ context.Context, channel, event string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, Published{Channel: channel, Event: event, Payload: payload})
}

// Channels liefert die Kanäle, auf denen event veröffentlicht wurde, in Reihenfolge.
func (m *MockBroadcaster) Channels(event string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, p := range m.Published {
		if p.Event == event {
			out = append(out, p.Channel)
		}
	}
	return out
}
