package models

import "time"

// PaymentStatus enumerates payment outcomes surfaced to the dashboard.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is a read-model of a processed payment. The dashboard can list
// payments and issue refunds; actual payment processing happens elsewhere.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"bookingId"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	RefundReason  string        `json:"refundReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// WebhookLog records a single payment-provider webhook delivery.
type WebhookLog struct {
	ID         string    `json:"id"`
	PaymentID  string    `json:"paymentId,omitempty"`
	Event      string    `json:"event"`
	Payload    string    `json:"payload,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}
