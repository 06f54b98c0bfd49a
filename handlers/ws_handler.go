package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"

	"postfeed/feed"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type Client struct {
	id   string
	conn *websocket.Conn
}

// this method to send JSON
func (c *Client) SendJSON(v interface{}) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub mirrors the page and pushes every change to the connected browsers.
type Hub struct {
	mu      sync.Mutex
	blocks  []string
	clients map[*websocket.Conn]*Client
	changes chan feed.Change
	done    chan struct{}
}

func NewHub(page *feed.Page) *Hub {
	h := &Hub{
		clients: make(map[*websocket.Conn]*Client),
		changes: make(chan feed.Change, 256),
		done:    make(chan struct{}),
	}
	h.blocks = page.Subscribe(func(c feed.Change) {
		select {
		case h.changes <- c:
		case <-h.done:
		}
	})
	return h
}

// Run applies queued page changes to the mirror and broadcasts them until
// ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case c := <-h.changes:
			h.mu.Lock()
			switch c.Op {
			case feed.OpReplace:
				h.blocks = append([]string(nil), c.Blocks...)
			case feed.OpAppend:
				h.blocks = append(h.blocks, c.Blocks...)
			}
			h.broadcast(c)
			h.mu.Unlock()
		}
	}
}

// caller holds h.mu
func (h *Hub) broadcast(c feed.Change) {
	for conn, client := range h.clients {
		if err := client.SendJSON(c); err != nil {
			log.Printf("Broadcast error to %s: %v", client.id, err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	id, _ := uuid.NewV4()
	client := &Client{id: id.String(), conn: conn}

	h.mu.Lock()
	snapshot := feed.Change{Op: feed.OpReplace, Blocks: append([]string{}, h.blocks...)}
	if err := client.SendJSON(snapshot); err != nil {
		h.mu.Unlock()
		log.Printf("Error sending snapshot to %s: %v", client.id, err)
		return
	}
	h.clients[conn] = client
	h.mu.Unlock()
	log.Printf("Client %s connected", client.id)

	// the page never reads from browsers; this only notices the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	log.Printf("Client %s disconnected", client.id)
}
