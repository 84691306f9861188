package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/CedarBible/core/scripture"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
)

// Event is one message pushed to WebSocket subscribers.
type Event struct {
	Type      string           `json:"type"`            // "welcome" or "daily_verse"
	Date      string           `json:"date,omitempty"`  // UTC date that selected the verse
	Verse     *scripture.Verse `json:"verse,omitempty"` // the selected verse
	Timestamp string           `json:"timestamp"`       // ISO 8601 timestamp
}

// Client represents a WebSocket client connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains active WebSocket connections and broadcasts messages.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop to handle client registration and broadcasting.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logging.WebSocketEvent("client_connected", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logging.WebSocketEvent("client_disconnected", len(h.clients))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client channel full, disconnect
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends an event to all connected clients.
func (h *Hub) Broadcast(ev Event) {
	data, ok := marshalEvent(ev)
	if !ok {
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logging.Warn("broadcast channel full, dropping event")
	}
}

// marshalEvent encodes an event, stamping the timestamp when unset.
func marshalEvent(ev Event) ([]byte, bool) {
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logging.Error("failed to marshal websocket event", "error", err)
		return nil, false
	}
	return data, true
}

// enqueue queues an event for this client only, dropping it when the
// client cannot keep up.
func (c *Client) enqueue(ev Event) {
	data, ok := marshalEvent(ev)
	if !ok {
		return
	}

	select {
	case c.send <- data:
	default:
	}
}

// readPump reads messages from the WebSocket connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error("websocket unexpected close", "error", err)
			}
			break
		}
	}
}

// writePump writes messages to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush any additional queued messages
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleWebSocket upgrades HTTP connections to WebSocket, registers the
// client, and greets it with a welcome event and the current daily verse.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "WebSocket hub not initialized", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	client.enqueue(Event{Type: "welcome"})
	if ev, ok := s.dailyEvent(time.Now()); ok {
		client.enqueue(ev)
	}

	// Start goroutines for reading and writing
	go client.writePump()
	go client.readPump()
}

// dailyEvent builds the daily_verse event for the default translation.
func (s *Server) dailyEvent(now time.Time) (Event, bool) {
	tr, ok := s.catalog.Default(s.cfg.DefaultTranslation)
	if !ok {
		return Event{}, false
	}
	v, ok := s.dailyVerse(tr, now)
	if !ok {
		return Event{}, false
	}

	return Event{
		Type:  "daily_verse",
		Date:  now.UTC().Format(dateLayout),
		Verse: &v,
	}, true
}

// watchDaily broadcasts the new daily verse whenever the UTC date rolls
// over, checking once per interval.
func (s *Server) watchDaily(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now().UTC().Format(dateLayout)
	for range ticker.C {
		today := time.Now().UTC().Format(dateLayout)
		if today == last {
			continue
		}
		last = today

		if ev, ok := s.dailyEvent(time.Now()); ok {
			s.hub.Broadcast(ev)
			logging.Info("daily verse broadcast", "date", today)
		}
	}
}
