// Package store defines the repository contracts behind the admin API and
// provides two implementations: a typed in-memory store seeded with sample
// data (development and tests) and a PostgreSQL store for the core entities.
package store

import (
	"context"
	"time"

	"github.com/blushrz/salon-admin/models"
)

// SalonRepository persists salon records.
type SalonRepository interface {
	List(ctx context.Context) ([]models.Salon, error)
	Get(ctx context.Context, id string) (models.Salon, error)
	Create(ctx context.Context, salon models.Salon) (models.Salon, error)
	Update(ctx context.Context, salon models.Salon) (models.Salon, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists salon services.
type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Service, error)
	Get(ctx context.Context, id string) (models.Service, error)
	Create(ctx context.Context, service models.Service) (models.Service, error)
	Update(ctx context.Context, service models.Service) (models.Service, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository persists salon staff members.
type StaffRepository interface {
	List(ctx context.Context) ([]models.Staff, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error)
	Get(ctx context.Context, id string) (models.Staff, error)
	Create(ctx context.Context, staff models.Staff) (models.Staff, error)
	Update(ctx context.Context, staff models.Staff) (models.Staff, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository persists bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error)
	// ListByDate returns bookings scheduled on the calendar day of date.
	ListByDate(ctx context.Context, date time.Time) ([]models.Booking, error)
	Get(ctx context.Context, id string) (models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	Update(ctx context.Context, booking models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// OfferRepository persists promotional offers.
type OfferRepository interface {
	List(ctx context.Context) ([]models.Offer, error)
	// ListExpired returns offers still active whose end date lies before asOf.
	ListExpired(ctx context.Context, asOf time.Time) ([]models.Offer, error)
	Get(ctx context.Context, id string) (models.Offer, error)
	Create(ctx context.Context, offer models.Offer) (models.Offer, error)
	Update(ctx context.Context, offer models.Offer) (models.Offer, error)
	Delete(ctx context.Context, id string) error
}

// AdminRepository persists dashboard operator accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	Get(ctx context.Context, id string) (models.Admin, error)
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// UserRepository serves the end-customer read model.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
}

// PaymentRepository serves the payment read model and refunds.
type PaymentRepository interface {
	List(ctx context.Context) ([]models.Payment, error)
	Get(ctx context.Context, id string) (models.Payment, error)
	Update(ctx context.Context, payment models.Payment) (models.Payment, error)
	WebhookLogs(ctx context.Context) ([]models.WebhookLog, error)
}

// NotificationRepository persists admin-authored notifications.
type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Get(ctx context.Context, id string) (models.Notification, error)
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	Update(ctx context.Context, n models.Notification) (models.Notification, error)
	Delete(ctx context.Context, id string) error
}

// Repositories groups every repository behind one injection point.
type Repositories struct {
	Salons        SalonRepository
	Services      ServiceRepository
	Staff         StaffRepository
	Bookings      BookingRepository
	Offers        OfferRepository
	Admins        AdminRepository
	Users         UserRepository
	Payments      PaymentRepository
	Notifications NotificationRepository
}
