package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"cardplanet/pkg/logger"
)

// Event is one storefront notification pushed to connected clients:
// cart clamps ("cart.max_stock") and order lifecycle changes
// ("order.created", "order.status").
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client represents one WebSocket connection, keyed by cart session.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub manages active storefront connections and fans events out to them.
type Hub struct {
	clients    map[string][]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the hub loop until ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
				h.mutex.Unlock()
				logger.Debug("Event client registered: %s", client.SessionID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				h.removeClient(client)
				h.mutex.Unlock()
				logger.Debug("Event client unregistered: %s", client.SessionID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				// removeClient mutates the slices being ranged over, so
				// slow clients are collected first and removed after.
				var stale []*Client
				for _, conns := range h.clients {
					for _, client := range conns {
						select {
						case client.Send <- message:
						default:
							stale = append(stale, client)
						}
					}
				}
				for _, client := range stale {
					h.removeClient(client)
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event %s: %v", event.Type, err)
		return
	}
	select {
	case h.broadcast <- message:
	default:
		logger.Warn("Event channel full, dropping %s", event.Type)
	}
}

// SendToSession delivers an event to one session's connections only.
func (h *Hub) SendToSession(sessionID string, event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event %s: %v", event.Type, err)
		return
	}

	// Send channels are only closed under the write lock; holding the
	// read lock for the sends keeps them open.
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// callers must hold h.mutex
func (h *Hub) removeClient(client *Client) {
	conns := h.clients[client.SessionID]
	for i, c := range conns {
		if c == client {
			h.clients[client.SessionID] = append(conns[:i], conns[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionID]) == 0 {
		delete(h.clients, client.SessionID)
	}
}

// ReadPump drains (and discards) messages until the peer closes; the
// event stream is one-way.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Event connection error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Event write error: %v", err)
			return
		}
	}
}
