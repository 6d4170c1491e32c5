package models

import "time"

// Offer is a promotional discount attached to one salon. DiscountPercentage
// is constrained to [0, 100] at the service layer.
type Offer struct {
	ID                 string       `json:"id"`
	SalonID            string       `json:"salonId"`
	Title              string       `json:"title"`
	Description        string       `json:"description,omitempty"`
	DiscountPercentage float64      `json:"discountPercentage"`
	StartDate          time.Time    `json:"startDate"`
	EndDate            time.Time    `json:"endDate"`
	Status             EntityStatus `json:"status"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}
