package models

import "time"

// Push event names delivered over the real-time connection. Subscribers
// register per name; delivery is at-least-once and unordered across names.
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"

	EventSalonUpdated       = "salon.updated"
	EventSalonStatusChanged = "salon.status_changed"

	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
	EventPaymentRefunded  = "payment.refunded"

	EventUserRegistered = "user.registered"
	EventUserUpdated    = "user.updated"

	EventSystemMaintenance  = "system.maintenance"
	EventSystemAnnouncement = "system.announcement"
)

// AllEvents lists every push event name, for subscribers that want the full
// stream.
func AllEvents() []string {
	return []string{
		EventBookingCreated, EventBookingUpdated, EventBookingCancelled, EventBookingCompleted,
		EventSalonUpdated, EventSalonStatusChanged,
		EventPaymentCompleted, EventPaymentFailed, EventPaymentRefunded,
		EventUserRegistered, EventUserUpdated,
		EventSystemMaintenance, EventSystemAnnouncement,
	}
}

// Control message actions emitted by the client over the push connection.
const (
	ActionJoinSalon  = "join_salon"
	ActionLeaveSalon = "leave_salon"
	ActionJoinAdmin  = "join_admin"
	ActionLeaveAdmin = "leave_admin"
)

// Event is the wire envelope for a single push event. SalonID scopes the
// event to a salon room where applicable; events without a salon scope are
// broadcast to the admin room only.
type Event struct {
	Type      string    `json:"type"`
	SalonID   string    `json:"salonId,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ControlMessage is a client-to-server room command. It carries no
// acknowledgement contract.
type ControlMessage struct {
	Action  string `json:"action"`
	SalonID string `json:"salonId,omitempty"`
}

// HandshakeRequest authenticates a freshly opened push connection.
type HandshakeRequest struct {
	Token string `json:"token"`
}

// HandshakeResponse acknowledges (or rejects) the handshake.
type HandshakeResponse struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// Handshake response types.
const (
	HandshakeConnected = "connected"
	HandshakeError     = "error"
)
