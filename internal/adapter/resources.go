package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/blushrz/salon-admin/models"
)

// dateParam is the wire format of date-scoped query parameters.
const dateParam = "2006-01-02"

// ── Salons ──────────────────────────────────────────────────────────────────

func (c *client) ListSalons(ctx context.Context) ([]models.Salon, error) {
	var out []models.Salon
	if err := c.get(ctx, epSalons, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetSalon(ctx context.Context, id string) (models.Salon, error) {
	var out models.Salon
	if err := c.get(ctx, epSalon(id), &out); err != nil {
		return models.Salon{}, err
	}
	return out, nil
}

func (c *client) CreateSalon(ctx context.Context, salon models.Salon) (models.Salon, error) {
	var out models.Salon
	if err := c.do(ctx, http.MethodPost, epSalons, salon, &out); err != nil {
		return models.Salon{}, err
	}
	return out, nil
}

func (c *client) UpdateSalon(ctx context.Context, salon models.Salon) (models.Salon, error) {
	var out models.Salon
	if err := c.do(ctx, http.MethodPut, epSalon(salon.ID), salon, &out); err != nil {
		return models.Salon{}, err
	}
	return out, nil
}

func (c *client) DeleteSalon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epSalon(id), nil, nil)
}

func (c *client) UpdateSalonStatus(ctx context.Context, id string, status models.EntityStatus) error {
	return c.do(ctx, http.MethodPut, epSalonStatus(id), models.StatusUpdate{Status: string(status)}, nil)
}

func (c *client) SalonServices(ctx context.Context, id string) ([]models.Service, error) {
	var out []models.Service
	if err := c.get(ctx, epSalonServices(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) SalonStaff(ctx context.Context, id string) ([]models.Staff, error) {
	var out []models.Staff
	if err := c.get(ctx, epSalonStaff(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) SalonAvailability(ctx context.Context, id string, date time.Time) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	path := fmt.Sprintf("%s?date=%s", epSalonAvailability(id), date.Format(dateParam))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Services ────────────────────────────────────────────────────────────────

func (c *client) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.get(ctx, epServices, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetService(ctx context.Context, id string) (models.Service, error) {
	var out models.Service
	if err := c.get(ctx, epService(id), &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

func (c *client) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPost, epServices, service, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

func (c *client) UpdateService(ctx context.Context, service models.Service) (models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPut, epService(service.ID), service, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

func (c *client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epService(id), nil, nil)
}

// ── Staff ───────────────────────────────────────────────────────────────────

func (c *client) ListStaff(ctx context.Context) ([]models.Staff, error) {
	var out []models.Staff
	if err := c.get(ctx, epStaff, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetStaffMember(ctx context.Context, id string) (models.Staff, error) {
	var out models.Staff
	if err := c.get(ctx, epStaffMember(id), &out); err != nil {
		return models.Staff{}, err
	}
	return out, nil
}

func (c *client) CreateStaffMember(ctx context.Context, staff models.Staff) (models.Staff, error) {
	var out models.Staff
	if err := c.do(ctx, http.MethodPost, epStaff, staff, &out); err != nil {
		return models.Staff{}, err
	}
	return out, nil
}

func (c *client) UpdateStaffMember(ctx context.Context, staff models.Staff) (models.Staff, error) {
	var out models.Staff
	if err := c.do(ctx, http.MethodPut, epStaffMember(staff.ID), staff, &out); err != nil {
		return models.Staff{}, err
	}
	return out, nil
}

func (c *client) DeleteStaffMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epStaffMember(id), nil, nil)
}

// ── Bookings ────────────────────────────────────────────────────────────────

func (c *client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.get(ctx, epBookings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	var out models.Booking
	if err := c.get(ctx, epBooking(id), &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

func (c *client) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, epBookings, booking, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

func (c *client) UpdateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPut, epBooking(booking.ID), booking, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

func (c *client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epBooking(id), nil, nil)
}

func (c *client) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return c.do(ctx, http.MethodPut, epBookingStatus(id), models.StatusUpdate{Status: string(status)}, nil)
}

func (c *client) BookingsByDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	path := fmt.Sprintf("%s?date=%s", epBookingsByDay, date.Format(dateParam))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) BookingsBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.get(ctx, epBookingsBySalon(salonID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (c *client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, epUsers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	if err := c.get(ctx, epUser(id), &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *client) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, epUser(user.ID), user, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *client) UserFavorites(ctx context.Context, id string) ([]models.Salon, error) {
	var out []models.Salon
	if err := c.get(ctx, epUserFavorites(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Payments ────────────────────────────────────────────────────────────────

func (c *client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.get(ctx, epPayments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	var out models.Payment
	if err := c.get(ctx, epPayment(id), &out); err != nil {
		return models.Payment{}, err
	}
	return out, nil
}

func (c *client) RefundPayment(ctx context.Context, id, reason string) (models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, epPaymentRefund(id), models.RefundRequest{Reason: reason}, &out); err != nil {
		return models.Payment{}, err
	}
	return out, nil
}

func (c *client) WebhookLogs(ctx context.Context) ([]models.WebhookLog, error) {
	var out []models.WebhookLog
	if err := c.get(ctx, epWebhookLogs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Analytics ───────────────────────────────────────────────────────────────

func (c *client) AnalyticsOverview(ctx context.Context) (models.AnalyticsOverview, error) {
	var out models.AnalyticsOverview
	if err := c.get(ctx, epAnalyticsOverview, &out); err != nil {
		return models.AnalyticsOverview{}, err
	}
	return out, nil
}

func (c *client) BookingsAnalytics(ctx context.Context) (models.BookingsAnalytics, error) {
	var out models.BookingsAnalytics
	if err := c.get(ctx, epAnalyticsBookings, &out); err != nil {
		return models.BookingsAnalytics{}, err
	}
	return out, nil
}

func (c *client) RevenueAnalytics(ctx context.Context) (models.RevenueAnalytics, error) {
	var out models.RevenueAnalytics
	if err := c.get(ctx, epAnalyticsRevenue, &out); err != nil {
		return models.RevenueAnalytics{}, err
	}
	return out, nil
}

func (c *client) SalonsAnalytics(ctx context.Context) ([]models.SalonAnalytics, error) {
	var out []models.SalonAnalytics
	if err := c.get(ctx, epAnalyticsSalons, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ServicesAnalytics(ctx context.Context) ([]models.ServiceAnalytics, error) {
	var out []models.ServiceAnalytics
	if err := c.get(ctx, epAnalyticsServices, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) UsersAnalytics(ctx context.Context) (models.UsersAnalytics, error) {
	var out models.UsersAnalytics
	if err := c.get(ctx, epAnalyticsUsers, &out); err != nil {
		return models.UsersAnalytics{}, err
	}
	return out, nil
}

// AnalyticsExport returns the raw CSV export body. It goes through the same
// refresh-and-retry flow as the typed endpoints.
func (c *client) AnalyticsExport(ctx context.Context) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, epAnalyticsExport, nil, nil, c.tokens.AccessToken())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && c.tokens.RefreshToken() != "" {
		newToken, refreshErr := c.refresh(ctx)
		if refreshErr != nil {
			return nil, refreshErr
		}
		resp, err = c.send(ctx, http.MethodGet, epAnalyticsExport, nil, nil, newToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ── Notifications ───────────────────────────────────────────────────────────

func (c *client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.get(ctx, epNotifications, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	var out models.Notification
	if err := c.do(ctx, http.MethodPost, epNotifications, n, &out); err != nil {
		return models.Notification{}, err
	}
	return out, nil
}

func (c *client) SendNotification(ctx context.Context, req models.SendNotificationRequest) (models.Notification, error) {
	var out models.Notification
	if err := c.do(ctx, http.MethodPost, epNotifySend, req, &out); err != nil {
		return models.Notification{}, err
	}
	return out, nil
}

func (c *client) UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	var out models.Notification
	if err := c.do(ctx, http.MethodPut, epNotification(n.ID), n, &out); err != nil {
		return models.Notification{}, err
	}
	return out, nil
}

func (c *client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epNotification(id), nil, nil)
}

// ── Offers ──────────────────────────────────────────────────────────────────

func (c *client) ListOffers(ctx context.Context) ([]models.Offer, error) {
	var out []models.Offer
	if err := c.get(ctx, epOffers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetOffer(ctx context.Context, id string) (models.Offer, error) {
	var out models.Offer
	if err := c.get(ctx, epOffer(id), &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}

func (c *client) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	var out models.Offer
	if err := c.do(ctx, http.MethodPost, epOffers, offer, &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}

func (c *client) UpdateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	var out models.Offer
	if err := c.do(ctx, http.MethodPut, epOffer(offer.ID), offer, &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}

func (c *client) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, epOffer(id), nil, nil)
}
