// Package hub implements the server side of the push-event connection: it
// upgrades dashboard connections, authenticates them with the same handshake
// the client sends, tracks room membership, and fans domain events out to
// every interested connection.
package hub

import (
	"net/http"
	"sync"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	handshakeTimeout = 10 * time.Second
	writeTimeout     = 10 * time.Second
	// sendBuffer bounds per-client queued events; a client that cannot keep
	// up is dropped rather than blocking the broadcast.
	sendBuffer = 32

	roomAdmin       = "admin"
	roomSalonPrefix = "salon:"
)

// TokenVerifier authenticates handshake tokens. Implemented by the auth
// service.
type TokenVerifier interface {
	VerifyAccessToken(token string) (models.Admin, error)
}

// client is one connected dashboard.
type client struct {
	id    string
	conn  *websocket.Conn
	send  chan models.Event
	rooms map[string]struct{}
}

// Hub owns every live push connection.
type Hub struct {
	verifier TokenVerifier
	logger   *logger.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// New builds a hub that authenticates handshakes against verifier.
func New(verifier TokenVerifier, log *logger.Logger) *Hub {
	return &Hub{
		verifier: verifier,
		logger:   log,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the connection and runs the handshake. Connections that
// fail authentication get a handshake error frame and are closed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	deadline := time.Now().Add(handshakeTimeout)
	_ = conn.SetReadDeadline(deadline)

	var hs models.HandshakeRequest
	if err = conn.ReadJSON(&hs); err != nil {
		_ = conn.Close()
		return
	}

	admin, err := h.verifier.VerifyAccessToken(hs.Token)
	if err != nil {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.WriteJSON(models.HandshakeResponse{Type: models.HandshakeError, Error: "invalid token"})
		_ = conn.Close()
		return
	}

	_ = conn.SetWriteDeadline(deadline)
	if err = conn.WriteJSON(models.HandshakeResponse{Type: models.HandshakeConnected}); err != nil {
		_ = conn.Close()
		return
	}
	_ = conn.SetReadDeadline(time.Time{})
	_ = conn.SetWriteDeadline(time.Time{})

	c := &client{
		id:    uuid.NewString(),
		conn:  conn,
		send:  make(chan models.Event, sendBuffer),
		rooms: map[string]struct{}{roomAdmin: {}},
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info().Str("client", c.id).Str("admin", admin.Email).Msg("dashboard connected")

	go h.writePump(c)
	h.readPump(c)
}

// readPump consumes room commands until the connection drops.
func (h *Hub) readPump(c *client) {
	defer h.drop(c)

	for {
		var msg models.ControlMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		h.handleControl(c, msg)
	}
}

func (h *Hub) handleControl(c *client, msg models.ControlMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch msg.Action {
	case models.ActionJoinSalon:
		if msg.SalonID != "" {
			c.rooms[roomSalonPrefix+msg.SalonID] = struct{}{}
		}
	case models.ActionLeaveSalon:
		delete(c.rooms, roomSalonPrefix+msg.SalonID)
	case models.ActionJoinAdmin:
		c.rooms[roomAdmin] = struct{}{}
	case models.ActionLeaveAdmin:
		delete(c.rooms, roomAdmin)
	default:
		h.logger.Debug().Str("action", msg.Action).Msg("unknown room command ignored")
	}
}

// writePump serializes queued events onto the connection.
func (h *Hub) writePump(c *client) {
	for ev := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(ev); err != nil {
			h.drop(c)
			return
		}
	}
}

// drop unregisters and closes a client. Safe to call more than once.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, registered := h.clients[c]
	if registered {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if registered {
		_ = c.conn.Close()
		h.logger.Info().Str("client", c.id).Msg("dashboard disconnected")
	}
}

// Broadcast queues ev for every client in the admin room and, when the event
// is salon-scoped, every client in that salon's room. Each client receives
// the event at most once per broadcast.
func (h *Hub) Broadcast(ev models.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	// Sends happen under the read lock so a concurrent drop cannot close a
	// channel mid-broadcast. Sends are non-blocking; overflowing clients are
	// collected and dropped after the lock is released.
	var slow []*client

	h.mu.RLock()
	for c := range h.clients {
		if !c.wants(ev) {
			continue
		}
		select {
		case c.send <- ev:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn().Str("client", c.id).Str("event", ev.Type).Msg("slow client, dropping connection")
		h.drop(c)
	}
}

// wants must be called with the hub lock held.
func (c *client) wants(ev models.Event) bool {
	if _, ok := c.rooms[roomAdmin]; ok {
		return true
	}
	if ev.SalonID == "" {
		return false
	}
	_, ok := c.rooms[roomSalonPrefix+ev.SalonID]
	return ok
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close terminates every connection.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.drop(c)
	}
}
