package ws

import (
	"encoding/json"
	"sync"

	"tokrecharge_api/internal/logger"
)

// Hub fans events out to every connected dashboard client. Clients that
// cannot keep up with the broadcast rate are dropped rather than blocking
// the rest.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	logger.Info("dashboard client connected", "clients", count)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	logger.Info("dashboard client disconnected", "clients", count)
}

// Broadcast sends a typed event to every connected client. Marshal errors
// are logged and swallowed so callers never fail on feed problems.
func (h *Hub) Broadcast(event string, data any) {
	msg, err := json.Marshal(map[string]any{"type": event, "data": data})
	if err != nil {
		logger.Error("broadcast marshal failed", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			// slow consumer, let its writePump die on channel close later
		}
	}
}

// ClientCount reports connected clients, used by the dashboard payload.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
