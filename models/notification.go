package models

import "time"

// NotificationStatus tracks delivery state of an admin-authored notification.
type NotificationStatus string

const (
	NotificationDraft NotificationStatus = "draft"
	NotificationSent  NotificationStatus = "sent"
)

// Notification is a message authored in the dashboard and optionally pushed
// to customers (e.g. over SMS).
type Notification struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	Recipient string             `json:"recipient,omitempty"`
	Status    NotificationStatus `json:"status"`
	SentAt    time.Time          `json:"sentAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
