package models

import "time"

// Service is a bookable treatment offered by one salon. Price is a decimal
// amount in the salon's currency; Duration is in minutes and must be positive.
type Service struct {
	ID          string       `json:"id"`
	SalonID     string       `json:"salonId"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	Duration    int          `json:"duration"`
	Status      EntityStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
