package service

import (
	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// EventPublisher fans a domain event out to connected dashboards. The
// websocket hub implements it; tests plug in a recorder.
type EventPublisher interface {
	Broadcast(ev models.Event)
}

// NopPublisher drops every event. Used when no hub is wired.
type NopPublisher struct{}

func (NopPublisher) Broadcast(models.Event) {}

// Services groups the admin API business logic behind one injection point.
type Services struct {
	Auth          *AuthService
	Salons        *SalonService
	Catalog       *CatalogService
	Staff         *StaffService
	Bookings      *BookingService
	Offers        *OfferService
	Users         *UserService
	Payments      *PaymentService
	Analytics     *AnalyticsService
	Notifications *NotificationService
}

// NewServices wires every service over the repositories and the event
// publisher.
func NewServices(repos *store.Repositories, events EventPublisher, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	if events == nil {
		events = NopPublisher{}
	}

	return &Services{
		Auth:          NewAuthService(repos.Admins, cfg.Auth, log),
		Salons:        NewSalonService(repos, events, log),
		Catalog:       NewCatalogService(repos, log),
		Staff:         NewStaffService(repos, log),
		Bookings:      NewBookingService(repos, events, log),
		Offers:        NewOfferService(repos, events, log),
		Users:         NewUserService(repos, events, log),
		Payments:      NewPaymentService(repos, events, log),
		Analytics:     NewAnalyticsService(repos, log),
		Notifications: NewNotificationService(repos.Notifications, events, cfg.Notifier, log),
	}
}
