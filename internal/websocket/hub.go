package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 256
	writeTimeout = 10 * time.Second
)

// Client represents a single connected WebSocket client
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uuid.UUID
	Role   string
}

type delivery struct {
	recipients map[uuid.UUID]bool
	message    []byte
}

// Hub maintains the set of active clients and routes marketplace events to them.
// It implements integration.Notifier.
type Hub struct {
	clients    map[*Client]bool
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	adminRole  string
}

var _ integration.Notifier = (*Hub)(nil)

// NewHub initializes a hub accepting upgrades from the given origins. An empty list allows any origin.
func NewHub(allowedOrigins []string, adminRole string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan delivery),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		adminRole:  adminRole,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(origins) == 0 || origin == "" || origins[origin]
			},
		},
	}
}

// Run starts the dispatch loop. It returns when ctx is done, closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WS] client connected: user=%s role=%s", client.UserID, client.Role)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Printf("[WS] client disconnected: user=%s", client.UserID)
			}
			h.mu.Unlock()
		case d := <-h.deliver:
			h.mu.Lock()
			for client := range h.clients {
				if client.Role != h.adminRole && !d.recipients[client.UserID] {
					continue
				}
				select {
				case client.Send <- d.message:
				default:
					// slow consumer
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ConnectedClients reports the number of registered connections.
func (h *Hub) ConnectedClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues an event for routing. It blocks until the dispatch loop accepts it or ctx ends.
func (h *Hub) Publish(ctx context.Context, event integration.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	recipients := make(map[uuid.UUID]bool, len(event.Recipients))
	for _, id := range event.Recipients {
		recipients[id] = true
	}

	select {
	case h.deliver <- delivery{recipients: recipients, message: message}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to publish %s event: %w", event.Type, ctx.Err())
	case <-h.done:
		return fmt.Errorf("failed to publish %s event: hub stopped", event.Type)
	}
}

func (h *Hub) NotifyContractorsAssigned(ctx context.Context, requestID uuid.UUID, contractorIDs []uuid.UUID) error {
	return h.Publish(ctx, integration.Event{
		Type:       integration.EventContractorsAssigned,
		Recipients: contractorIDs,
		Payload: map[string]interface{}{
			"request_id":     requestID,
			"contractor_ids": contractorIDs,
		},
	})
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump keeps the connection alive and unregisters the client when the peer goes away.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] read error: %v", err)
			}
			break
		}
	}
}

// ServeWs authenticates the token query parameter and upgrades the connection.
func ServeWs(hub *Hub, c *gin.Context, secret []byte) {
	tokenString := c.Query("token")
	if tokenString == "" {
		log.Println("[WS] connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	principal, err := middleware.ParseToken(tokenString, secret)
	if err != nil {
		log.Println("[WS] connection rejected: invalid token:", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if principal.Role == "" {
		log.Println("[WS] connection rejected: role missing")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := hub.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("[WS] upgrade failed:", err)
		return
	}
	client := &Client{
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
		UserID: principal.UserID,
		Role:   principal.Role,
	}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
