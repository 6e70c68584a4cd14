package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ScoutHub is the single hub instance broadcasting live scout events to
// every connected dashboard.
var ScoutHub = NewHub()

// ScoutEvent is the wire message pushed to scout watchers.
type ScoutEvent struct {
	Type    string      `json:"type"` // "action" or "substitution"
	MatchID string      `json:"matchId"`
	Payload interface{} `json:"payload"`
}

type scoutClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	clients    map[*scoutClient]bool
	broadcast  chan []byte
	register   chan *scoutClient
	unregister chan *scoutClient
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *scoutClient),
		unregister: make(chan *scoutClient),
		clients:    make(map[*scoutClient]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			slog.Info("Scout watcher connected", "watchers", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Scout watcher disconnected", "watchers", len(h.clients))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than stall the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish serializes an event and hands it to the broadcast loop.
func (h *Hub) Publish(event ScoutEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal scout event", "error", err)
		return
	}
	h.broadcast <- data
}

func (c *scoutClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	// Watchers only listen; inbound frames are drained to detect closes.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("Unexpected websocket close", "error", err)
			}
			break
		}
	}
}

func (c *scoutClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			slog.Error("Failed to write scout event to websocket", "error", err)
			return
		}
	}
}

// ScoutWSEndpoint upgrades the connection and registers a live-feed watcher.
func ScoutWSEndpoint(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}

	client := &scoutClient{
		hub:  ScoutHub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
