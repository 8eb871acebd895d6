package background

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans store changes out to connected websocket clients. Each open page
// holds one connection and receives a State event per mutation, starting
// with the current state on connect.
type Hub struct {
	store *Store

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates a Hub and wires it to the store's change callback.
func NewHub(store *Store) *Hub {
	h := &Hub{
		store: store,
		conns: make(map[*websocket.Conn]struct{}),
	}
	store.OnChange(h.Broadcast)
	return h
}

// HandleWS upgrades the request and streams state events until the client
// disconnects. Clients send nothing; the read loop exists only to observe
// the close.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("background: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	err = conn.WriteJSON(h.store.Snapshot())
	h.mu.Unlock()
	if err != nil {
		h.drop(conn)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("background: websocket read: %v", err)
			}
			h.drop(conn)
			return
		}
	}
}

// Broadcast sends the state to every connected client, dropping clients
// whose writes fail.
func (h *Hub) Broadcast(st State) {
	h.mu.Lock()
	var dead []*websocket.Conn
	for conn := range h.conns {
		if err := conn.WriteJSON(st); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(h.conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range dead {
		conn.Close()
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}
