package client

import (
	"sync"
	"time"
)

// Hub tracks connected clients so a server can tell them all about a shutdown.
type Hub struct {
	mu       sync.Mutex
	clients  map[int]chan struct{}
	nextID   int
	shutdown bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[int]chan struct{})}
}

// register adds a client. The returned channel is closed on shutdown.
func (h *Hub) register() (int, <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan struct{})
	if h.shutdown {
		close(ch)
	}
	h.clients[h.nextID] = ch
	return h.nextID, ch
}

func (h *Hub) unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Shutdown notifies every client and waits until all have disconnected or
// the timeout passes.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.Lock()
	if !h.shutdown {
		h.shutdown = true
		for _, ch := range h.clients {
			close(ch)
		}
	}
	h.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
