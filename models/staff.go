package models

import "time"

// Staff is a salon employee that can be assigned to bookings.
type Staff struct {
	ID             string       `json:"id"`
	SalonID        string       `json:"salonId"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Role           string       `json:"role,omitempty"`
	Specialization string       `json:"specialization,omitempty"`
	Status         EntityStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
