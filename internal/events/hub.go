// Package events broadcasts node lifecycle events (blocks forged, chain
// replacements, registry changes) to websocket subscribers. Clients connect
// to GET /ws/events and receive one JSON-encoded Event per message.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Kind identifies what happened.
type Kind string

const (
	KindBlockForged       Kind = "block_forged"
	KindChainReplaced     Kind = "chain_replaced"
	KindChainRetained     Kind = "chain_retained"
	KindNodeRegistered    Kind = "node_registered"
	KindNodeDeregistered  Kind = "node_deregistered"
	KindTransactionQueued Kind = "transaction_queued"
)

// Event is a single broadcast message.
type Event struct {
	Kind      Kind        `json:"kind"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Hub manages websocket subscribers and fans events out to them. A client
// that fails a write is dropped rather than allowed to block the rest.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the request to a websocket and subscribes it until the
// peer disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain reads so close frames are processed; drop the client when the
	// connection dies.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends an event to every connected subscriber.
func (h *Hub) Broadcast(kind Kind, payload interface{}) {
	data, err := json.Marshal(Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
