package models

// LoginRequest carries dashboard credentials to POST /auth/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the token pair and the authenticated admin.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         Admin  `json:"user"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse carries the freshly minted token pair.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// StatusUpdate is the body of the PATCH-style status endpoints for salons and
// bookings.
type StatusUpdate struct {
	Status string `json:"status"`
}

// RefundRequest is the body of POST /admin/payments/{id}/refund.
type RefundRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SendNotificationRequest is the body of POST /admin/notifications/send.
type SendNotificationRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Recipient string `json:"recipient,omitempty"`
}

// ErrorResponse is the uniform error body returned by the admin API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AvailabilitySlot describes one staff member's bookings for a requested
// date, letting the dashboard render open time ranges.
type AvailabilitySlot struct {
	StaffID   string    `json:"staffId"`
	StaffName string    `json:"staffName"`
	Booked    []Booking `json:"booked"`
}
