package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"travelbook/internal/pkg/logger"
)

const sendBuffer = 32

// Event is the frame pushed to websocket clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type client struct {
	userID string
	send   chan []byte
}

// Hub tracks connected clients. A user may hold several connections.
// Delivery never blocks: a client whose buffer is full is dropped.
type Hub struct {
	clients map[*client]struct{}
	mutex   sync.RWMutex
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     log.With("component", "realtime"),
	}
}

func (h *Hub) register(userID string) *client {
	c := &client{userID: userID, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[c] = struct{}{}
	h.mutex.Unlock()

	return c
}

func (h *Hub) unregister(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// SendToUser delivers ev to every connection of userID and reports how many
// accepted it.
func (h *Hub) SendToUser(userID string, ev Event) int {
	return h.deliver(ev, func(c *client) bool { return c.userID == userID })
}

func (h *Hub) Broadcast(ev Event) int {
	return h.deliver(ev, func(*client) bool { return true })
}

func (h *Hub) deliver(ev Event, match func(*client) bool) int {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("encode event", "type", ev.Type, "error", err)
		return 0
	}

	var slow []*client
	delivered := 0

	h.mutex.RLock()
	for c := range h.clients {
		if !match(c) {
			continue
		}
		select {
		case c.send <- msg:
			delivered++
		default:
			slow = append(slow, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range slow {
		h.log.Warn("dropping slow client", "user_id", c.userID)
		h.unregister(c)
	}
	return delivered
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for c := range h.clients {
		if c.userID == userID {
			return true
		}
	}
	return false
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// Close disconnects everyone. Write loops see their channel closed and exit.
func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
