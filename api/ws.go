package api

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"scriptweaver/generator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type previewMessage struct {
	Type     string   `json:"type"`
	Script   string   `json:"script,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// previewClient wraps a connection with a write mutex — gorilla/websocket
// forbids concurrent writes.
type previewClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *previewClient) send(msg previewMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// previewHub tracks connected preview clients and fans preview messages out
// to all of them. Clients that fail a write are dropped.
type previewHub struct {
	mu      sync.Mutex
	clients map[*previewClient]struct{}
}

func newPreviewHub() *previewHub {
	return &previewHub{clients: make(map[*previewClient]struct{})}
}

func (hub *previewHub) add(c *previewClient) {
	hub.mu.Lock()
	hub.clients[c] = struct{}{}
	hub.mu.Unlock()
}

func (hub *previewHub) remove(c *previewClient) {
	hub.mu.Lock()
	delete(hub.clients, c)
	hub.mu.Unlock()
}

func (hub *previewHub) broadcast(msg previewMessage) {
	hub.mu.Lock()
	clients := make([]*previewClient, 0, len(hub.clients))
	for c := range hub.clients {
		clients = append(clients, c)
	}
	hub.mu.Unlock()

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			hub.remove(c)
			c.conn.Close()
		}
	}
}

// broadcastPreview recomposes the current state and pushes it to every
// preview client. An empty assembly is not an error here: the UI gets an
// empty preview so it can clear its pane.
func (h *handler) broadcastPreview() {
	res, err := h.svc.Preview()
	if err != nil {
		if errors.Is(err, generator.ErrEmptyAssembly) {
			h.hub.broadcast(previewMessage{Type: "preview"})
		}
		return
	}
	warnings := res.Warnings
	if len(warnings) == 0 {
		warnings = nil
	}
	h.hub.broadcast(previewMessage{Type: "preview", Script: res.Script, Warnings: warnings})
}

func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}

	c := &previewClient{conn: conn}
	h.hub.add(c)
	defer func() {
		h.hub.remove(c)
		conn.Close()
	}()

	// Send the current preview immediately so a fresh client isn't blank
	// until the next mutation. An empty assembly yields an empty preview.
	initial := previewMessage{Type: "preview"}
	if res, err := h.svc.Preview(); err == nil {
		initial.Script = res.Script
		initial.Warnings = res.Warnings
	}
	if err := c.send(initial); err != nil {
		return
	}

	// Read loop exists only to detect disconnect; client messages carry no
	// meaning on this channel.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
