// Package adapter implements the admin API client: uniform request dispatch
// with bearer authentication, a one-shot coalesced refresh-and-retry on 401,
// and translation of transport failures into the sentinel error taxonomy
// defined in errors.go.
//
// Concurrent requests that hit 401 simultaneously share a single in-flight
// refresh call; on refresh failure the stored tokens are cleared and the
// configured session-expiry hook fires, so the application can return the
// operator to the login screen.
package adapter

import (
	"context"
	"time"

	"github.com/blushrz/salon-admin/models"
)

// AdminAPI is the transport contract consumed by the dashboard pages. Every
// method returns an error from the package taxonomy; callers are expected to
// surface the error and leave previously rendered state intact.
type AdminAPI interface {
	// Login authenticates with POST /auth/admin/login and persists the
	// returned token pair in the token store.
	Login(ctx context.Context, email, password string) (models.Admin, error)

	// Logout notifies the server (best effort) and clears both token media.
	Logout(ctx context.Context) error

	// CurrentUser fetches the authenticated admin from GET /auth/admin/me.
	CurrentUser(ctx context.Context) (models.Admin, error)

	// IsAuthenticated reports whether an access token is currently stored.
	IsAuthenticated() bool

	// Salons.
	ListSalons(ctx context.Context) ([]models.Salon, error)
	GetSalon(ctx context.Context, id string) (models.Salon, error)
	CreateSalon(ctx context.Context, salon models.Salon) (models.Salon, error)
	UpdateSalon(ctx context.Context, salon models.Salon) (models.Salon, error)
	DeleteSalon(ctx context.Context, id string) error
	UpdateSalonStatus(ctx context.Context, id string, status models.EntityStatus) error
	SalonServices(ctx context.Context, id string) ([]models.Service, error)
	SalonStaff(ctx context.Context, id string) ([]models.Staff, error)
	SalonAvailability(ctx context.Context, id string, date time.Time) ([]models.AvailabilitySlot, error)

	// Services.
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (models.Service, error)
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	UpdateService(ctx context.Context, service models.Service) (models.Service, error)
	DeleteService(ctx context.Context, id string) error

	// Staff.
	ListStaff(ctx context.Context) ([]models.Staff, error)
	GetStaffMember(ctx context.Context, id string) (models.Staff, error)
	CreateStaffMember(ctx context.Context, staff models.Staff) (models.Staff, error)
	UpdateStaffMember(ctx context.Context, staff models.Staff) (models.Staff, error)
	DeleteStaffMember(ctx context.Context, id string) error

	// Bookings.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
	BookingsByDate(ctx context.Context, date time.Time) ([]models.Booking, error)
	BookingsBySalon(ctx context.Context, salonID string) ([]models.Booking, error)

	// Users.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UserFavorites(ctx context.Context, id string) ([]models.Salon, error)

	// Payments.
	ListPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	RefundPayment(ctx context.Context, id, reason string) (models.Payment, error)
	WebhookLogs(ctx context.Context) ([]models.WebhookLog, error)

	// Analytics.
	AnalyticsOverview(ctx context.Context) (models.AnalyticsOverview, error)
	BookingsAnalytics(ctx context.Context) (models.BookingsAnalytics, error)
	RevenueAnalytics(ctx context.Context) (models.RevenueAnalytics, error)
	SalonsAnalytics(ctx context.Context) ([]models.SalonAnalytics, error)
	ServicesAnalytics(ctx context.Context) ([]models.ServiceAnalytics, error)
	UsersAnalytics(ctx context.Context) (models.UsersAnalytics, error)
	AnalyticsExport(ctx context.Context) ([]byte, error)

	// Notifications.
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	SendNotification(ctx context.Context, req models.SendNotificationRequest) (models.Notification, error)
	UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	DeleteNotification(ctx context.Context, id string) error

	// Offers.
	ListOffers(ctx context.Context) ([]models.Offer, error)
	GetOffer(ctx context.Context, id string) (models.Offer, error)
	CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	UpdateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}
