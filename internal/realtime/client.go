// Package realtime implements the push-event client for the admin dashboard:
// a websocket connection authenticated with the stored access token, a named
// event dispatcher with isolated subscriber callbacks, and fire-and-forget
// room commands.
//
// The connection follows a small state machine: disconnected, connecting,
// connected, error. Reconnection after an unexpected close is bounded; once
// the attempts are exhausted the client parks in the error state until
// Connect is called again.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/token"
	"github.com/blushrz/salon-admin/models"
	"github.com/gorilla/websocket"
)

// Status describes the connection state.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	defaultReconnectDelay   = 1 * time.Second
	maxReconnectAttempts    = 5
)

// Client is the push-event connection. It is constructed explicitly and
// wired by the caller; its lifecycle is Connect/Disconnect.
type Client struct {
	url    string
	tokens token.Store
	dialer *websocket.Dialer
	logger *logger.Logger

	handshakeTimeout time.Duration
	reconnectDelay   time.Duration

	mu     sync.Mutex
	status Status
	conn   *websocket.Conn
	// done is closed by Disconnect so the read pump can tell an explicit
	// close apart from a transport failure. Recreated per connection.
	done chan struct{}

	subs *dispatcher
}

// NewClient builds a push-event client from the adapter config. The websocket
// URL is required; http(s) schemes are rewritten to ws(s).
func NewClient(cfg config.ClientAdapter, tokens token.Store, log *logger.Logger) (*Client, error) {
	wsURL, err := normalizeWSURL(cfg.WSURL)
	if err != nil {
		return nil, fmt.Errorf("invalid websocket url: %w", err)
	}

	return &Client{
		url:              wsURL,
		tokens:           tokens,
		dialer:           websocket.DefaultDialer,
		logger:           log,
		handshakeTimeout: defaultHandshakeTimeout,
		reconnectDelay:   defaultReconnectDelay,
		status:           StatusDisconnected,
		subs:             newDispatcher(log),
	}, nil
}

func normalizeWSURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "ws://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return u.String(), nil
}

// Status returns the current connection state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Client) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// Connect opens the push connection and performs the token handshake. It is
// a no-op when the client is already connected or connecting, and fails fast
// with [ErrNoToken] when no access token is stored. The handshake is bounded
// by a fixed timeout.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusConnected || c.status == StatusConnecting {
		c.mu.Unlock()
		return nil
	}

	accessToken := c.tokens.AccessToken()
	if accessToken == "" {
		c.mu.Unlock()
		return ErrNoToken
	}

	c.status = StatusConnecting
	c.mu.Unlock()

	conn, err := c.dial(ctx, accessToken)
	if err != nil {
		c.setStatus(StatusError)
		return err
	}

	c.establish(conn)
	c.logger.Info().Str("url", c.url).Msg("push connection established")

	return nil
}

// dial opens the websocket and runs the authentication handshake.
func (c *Client) dial(ctx context.Context, accessToken string) (*websocket.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, c.handshakeTimeout)
	defer cancel()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: dial: %v", ErrConnectionTimeout, err)
		}
		return nil, fmt.Errorf("dial %s: %w", c.url, err)
	}

	deadline := time.Now().Add(c.handshakeTimeout)
	_ = conn.SetWriteDeadline(deadline)
	if err = conn.WriteJSON(models.HandshakeRequest{Token: accessToken}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: send handshake: %v", ErrHandshake, err)
	}

	_ = conn.SetReadDeadline(deadline)
	var resp models.HandshakeResponse
	if err = conn.ReadJSON(&resp); err != nil {
		_ = conn.Close()
		if netTimeout(err) {
			return nil, fmt.Errorf("%w: no handshake response", ErrConnectionTimeout)
		}
		return nil, fmt.Errorf("%w: read handshake: %v", ErrHandshake, err)
	}
	if resp.Type != models.HandshakeConnected {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrHandshake, resp.Error)
	}

	_ = conn.SetReadDeadline(time.Time{})
	_ = conn.SetWriteDeadline(time.Time{})

	return conn, nil
}

func netTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}

// establish installs conn as the active connection and starts its read pump.
func (c *Client) establish(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.status = StatusConnected
	done := make(chan struct{})
	c.done = done
	c.mu.Unlock()

	go c.readPump(conn, done)
}

// readPump delivers incoming events until the connection drops. A drop that
// was not an explicit Disconnect starts the bounded reconnect loop.
func (c *Client) readPump(conn *websocket.Conn, done chan struct{}) {
	for {
		var ev models.Event
		if err := conn.ReadJSON(&ev); err != nil {
			select {
			case <-done:
				return
			default:
			}

			c.logger.Warn().Err(err).Msg("push connection lost")
			c.reconnect()
			return
		}

		c.subs.dispatch(ev)
	}
}

// reconnect retries the connection with a fixed delay between attempts.
// Exhausting the attempts parks the client in the error state; the caller
// must Connect again to resume.
func (c *Client) reconnect() {
	c.setStatus(StatusConnecting)

	for attempt := 1; attempt <= maxReconnectAttempts; attempt++ {
		time.Sleep(c.reconnectDelay)

		if c.Status() != StatusConnecting {
			// explicitly disconnected while waiting
			return
		}

		accessToken := c.tokens.AccessToken()
		if accessToken == "" {
			break
		}

		conn, err := c.dial(context.Background(), accessToken)
		if err != nil {
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("reconnect failed")
			continue
		}

		c.establish(conn)
		c.logger.Info().Int("attempt", attempt).Msg("push connection restored")
		return
	}

	c.logger.Error().Err(ErrReconnectExhausted).Msg("push connection abandoned")
	c.setStatus(StatusError)
}

// Disconnect closes the connection and discards all subscriptions. It is
// idempotent.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.status = StatusDisconnected
	c.mu.Unlock()

	c.subs.clear()
}

// On subscribes cb to the named event and returns the unsubscribe function.
func (c *Client) On(event string, cb func(models.Event)) func() {
	return c.subs.on(event, cb)
}

// JoinSalonRoom subscribes this connection to events scoped to one salon.
func (c *Client) JoinSalonRoom(salonID string) {
	c.sendControl(models.ControlMessage{Action: models.ActionJoinSalon, SalonID: salonID})
}

// LeaveSalonRoom leaves a salon room.
func (c *Client) LeaveSalonRoom(salonID string) {
	c.sendControl(models.ControlMessage{Action: models.ActionLeaveSalon, SalonID: salonID})
}

// JoinAdminRoom subscribes this connection to the dashboard-wide room.
func (c *Client) JoinAdminRoom() {
	c.sendControl(models.ControlMessage{Action: models.ActionJoinAdmin})
}

// LeaveAdminRoom leaves the dashboard-wide room.
func (c *Client) LeaveAdminRoom() {
	c.sendControl(models.ControlMessage{Action: models.ActionLeaveAdmin})
}

// sendControl emits a fire-and-forget room command. There is no
// acknowledgement contract; failures are logged and dropped.
func (c *Client) sendControl(msg models.ControlMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		c.logger.Debug().Str("action", msg.Action).Msg("room command dropped, not connected")
		return
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		c.logger.Warn().Err(err).Str("action", msg.Action).Msg("room command failed")
	}
}
