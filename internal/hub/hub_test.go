package hub

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{ valid string }

func (v *stubVerifier) VerifyAccessToken(token string) (models.Admin, error) {
	if token != v.valid {
		return models.Admin{}, errors.New("bad token")
	}
	return models.Admin{ID: "admin-1", Email: "admin@blushrz.com"}, nil
}

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()

	h := New(&stubVerifier{valid: "access-1"}, logger.Nop())
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	t.Cleanup(h.Close)

	return h, "ws" + strings.TrimPrefix(srv.URL, "http")
}

// connect dials and completes the handshake with the given token.
func connect(t *testing.T, url, token string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.WriteJSON(models.HandshakeRequest{Token: token}))

	var resp models.HandshakeResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, models.HandshakeConnected, resp.Type)

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) models.Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev models.Event
	require.NoError(t, conn.ReadJSON(&ev))

	return ev
}

func assertNoEvent(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var ev models.Event
	err := conn.ReadJSON(&ev)
	require.Error(t, err, "unexpected event %q", ev.Type)
}

func TestHub_HandshakeRejectsBadToken(t *testing.T) {
	_, url := newTestHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(models.HandshakeRequest{Token: "stale"}))

	var resp models.HandshakeResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, models.HandshakeError, resp.Type)
	assert.Equal(t, "invalid token", resp.Error)
}

func TestHub_BroadcastReachesAdminRoom(t *testing.T) {
	h, url := newTestHub(t)
	conn := connect(t, url, "access-1")

	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	h.Broadcast(models.Event{Type: models.EventBookingCreated, SalonID: "salon-1"})

	ev := readEvent(t, conn)
	assert.Equal(t, models.EventBookingCreated, ev.Type)
	assert.Equal(t, "salon-1", ev.SalonID)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestHub_SalonRoomScoping(t *testing.T) {
	h, url := newTestHub(t)
	conn := connect(t, url, "access-1")
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	// leave the admin room and watch only salon-2
	require.NoError(t, conn.WriteJSON(models.ControlMessage{Action: models.ActionLeaveAdmin}))
	require.NoError(t, conn.WriteJSON(models.ControlMessage{Action: models.ActionJoinSalon, SalonID: "salon-2"}))
	time.Sleep(100 * time.Millisecond) // let the hub process the commands

	h.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: "salon-1"})
	assertNoEvent(t, conn)

	h.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: "salon-2"})
	ev := readEvent(t, conn)
	assert.Equal(t, "salon-2", ev.SalonID)
}

func TestHub_DisconnectedClientIsDropped(t *testing.T) {
	h, url := newTestHub(t)
	conn := connect(t, url, "access-1")
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	// broadcasting to an empty hub must not panic
	h.Broadcast(models.Event{Type: models.EventSystemAnnouncement})
}

func TestHub_MultipleClients(t *testing.T) {
	h, url := newTestHub(t)
	first := connect(t, url, "access-1")
	second := connect(t, url, "access-1")
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	h.Broadcast(models.Event{Type: models.EventPaymentCompleted})

	assert.Equal(t, models.EventPaymentCompleted, readEvent(t, first).Type)
	assert.Equal(t, models.EventPaymentCompleted, readEvent(t, second).Type)
}
