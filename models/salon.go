package models

import "time"

// EntityStatus is the shared active/inactive flag carried by salons, services,
// staff members and offers.
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusInactive EntityStatus = "inactive"
)

// Salon is a single salon record as served by the admin API. All fields are
// flat; relations to services, staff, bookings and offers are kept by ID on
// the owning side.
type Salon struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Address              string       `json:"address,omitempty"`
	Phone                string       `json:"phone,omitempty"`
	Email                string       `json:"email,omitempty"`
	Status               EntityStatus `json:"status"`
	WaitingTime          string       `json:"waitingTime,omitempty"`
	HomeServiceAvailable bool         `json:"homeServiceAvailable,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}
