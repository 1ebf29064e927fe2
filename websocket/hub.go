// Package websocket keeps the per-user registry of live connections so that
// committed activity (new messages, notifications) can be signalled without
// polling.
package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Signal struct {
	Type string  `json:"type"`
	Time float64 `json:"time"`
}

// client pairs a connection with the mutex that serializes writes to it.
// gorilla/websocket allows at most one concurrent writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(signal Signal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(signal)
}

type Hub struct {
	mu    sync.RWMutex
	conns map[uint][]*client
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint][]*client)}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID] = append(h.conns[userID], &client{conn: conn})
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.conns[userID]
	for i, c := range conns {
		if c.conn == conn {
			h.conns[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

// Publish sends a best-effort signal to every connection of the user. The
// durable record is the notification row; a failed socket write is only a
// missed ping.
func (h *Hub) Publish(userID uint, kind string) {
	h.mu.RLock()
	conns := append([]*client(nil), h.conns[userID]...)
	h.mu.RUnlock()

	signal := Signal{Type: kind, Time: float64(time.Now().UnixNano()) / 1e9}
	for _, c := range conns {
		if err := c.write(signal); err != nil {
			log.Printf("ws: write to user %d failed: %v", userID, err)
		}
	}
}
