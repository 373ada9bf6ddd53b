package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dvarga/shoplist/internal/model"
)

// Message is one push to UI clients: the complete current item set. The
// list screen re-renders from each snapshot instead of patching deltas.
type Message struct {
	Type  string               `json:"type"`
	Items []model.ShoppingItem `json:"items"`
}

// SnapshotMessage wraps an item snapshot for broadcast.
func SnapshotMessage(items []model.ShoppingItem) Message {
	if items == nil {
		items = []model.ShoppingItem{}
	}
	return Message{Type: "items_snapshot", Items: items}
}

// Hub maintains the set of active WebSocket clients and fans snapshots
// out to them. It remembers the most recent snapshot so a freshly
// connected client gets the current list without waiting for a change.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	last    []byte
	logger  *slog.Logger
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client and queues the latest snapshot for it.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		select {
		case c.send <- h.last:
		default:
		}
	}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends a message to all connected clients and records it as
// the latest snapshot.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client buffer full — drop; the next snapshot supersedes it
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
