package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// liveUpdate is one message pushed to dashboard clients
type liveUpdate struct {
	Type    string `json:"type"`
	MatchID int64  `json:"matchId"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from another origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveHub fans live updates out to every connected websocket client
type liveHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	updates chan liveUpdate
}

func newLiveHub() *liveHub {
	return &liveHub{
		clients: make(map[*websocket.Conn]bool),
		updates: make(chan liveUpdate, 16),
	}
}

func (h *liveHub) run() {
	for update := range h.updates {
		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteJSON(update); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.mu.Unlock()
	}
}

func (h *liveHub) broadcast(update liveUpdate) {
	select {
	case h.updates <- update:
	default:
		log.Println("Live feed backlog full, dropping update")
	}
}

func (h *liveHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *liveHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Drain client messages; we only push, never read
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}
