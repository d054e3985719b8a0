package realtime

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Client ist eine Verbindung im Hub. Send wird vom Schreib-Goroutine geleert
// und beim Abmelden geschlossen.
type Client struct {
	AccountID string
	Send      chan []byte

	rooms     map[string]struct{} // guarded by Hub.mu
	closed    bool                // guarded by Hub.mu
	closeOnce sync.Once
}

// Hub verwaltet Räume im Speicher dieser Instanz.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[*Client]struct{}
	sendBuffer int
}

func NewHub(sendBuffer int) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = 32
	}
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		sendBuffer: sendBuffer,
	}
}

// Register legt einen Client an und tritt automatisch dem eigenen Kontokanal bei.
func (h *Hub) Register(accountID string) *Client {
	c := &Client{
		AccountID: accountID,
		Send:      make(chan []byte, h.sendBuffer),
		rooms:     make(map[string]struct{}),
	}
	h.Join(c, accountID)
	return c
}

// Join ist für bereits abgemeldete Clients ein No-op.
func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.closed {
		return
	}

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, room)
}

func (h *Hub) leaveLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// Unregister entfernt c aus allen Räumen und schließt Send. Mehrfacher Aufruf ist erlaubt.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
	c.closed = true
	h.mu.Unlock()

	c.closeOnce.Do(func() { close(c.Send) })
}

// RoomSize wird von Health-Checks und Tests benutzt.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Publish erfüllt Broadcaster für den Einzelinstanz-Betrieb.
func (h *Hub) Publish(_ context.Context, channel, event string, payload any) {
	frame, err := json.Marshal(Frame{Event: event, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("Event konnte nicht serialisiert werden")
		return
	}
	h.Deliver(channel, frame)
}

// Deliver stellt einen fertigen Frame zu. Clients mit vollem Puffer werden getrennt.
func (h *Hub) Deliver(channel string, frame []byte) {
	var slow []*Client

	h.mu.RLock()
	for c := range h.rooms[channel] {
		select {
		case c.Send <- frame:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		log.Warn().Str("account_id", c.AccountID).Str("channel", channel).Msg("Langsamer Client getrennt")
		h.Unregister(c)
	}
}
