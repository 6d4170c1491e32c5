package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Salons
// ─────────────────────────────────────────────

func TestListSalons_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/admin/salons", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListSalons(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/salons", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	salons := decodeBody[[]models.Salon](t, rec)
	assert.Len(t, salons, 2)
}

func TestGetSalon_NotFound(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/salons/no-such-salon", login.Token, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody[models.ErrorResponse](t, rec)
	assert.NotEmpty(t, body.Message)
}

func TestCreateSalon(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/admin/salons", login.Token, models.Salon{
		Name: "Rose Nails", Address: "12 Rue des Fleurs, Casablanca", Status: models.StatusActive,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[models.Salon](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Rose Nails", created.Name)
}

func TestCreateSalon_ValidationFailure(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/admin/salons", login.Token, models.Salon{
		Address: "Rabat",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateSalonStatus(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPut, "/admin/salons/salon-1/status", login.Token,
		models.StatusUpdate{Status: "inactive"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := doRequest(t, router, http.MethodGet, "/admin/salons/salon-1", login.Token, nil)
	salon := decodeBody[models.Salon](t, got)
	assert.Equal(t, models.StatusInactive, salon.Status)
}

func TestUpdateSalonStatus_RejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPut, "/admin/salons/salon-1/status", login.Token,
		models.StatusUpdate{Status: "paused"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteSalon_WithBookingsConflicts(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodDelete, "/admin/salons/salon-1", login.Token, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSalonServices(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/salons/salon-1/services", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	services := decodeBody[[]models.Service](t, rec)
	require.NotEmpty(t, services)
	for _, svc := range services {
		assert.Equal(t, "salon-1", svc.SalonID)
	}
}

func TestSalonAvailability(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	date := time.Now().UTC().Add(24 * time.Hour).Format(dateQueryLayout)
	rec := doRequest(t, router, http.MethodGet, "/admin/salons/salon-1/availability?date="+date, login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	slots := decodeBody[[]models.AvailabilitySlot](t, rec)
	assert.NotEmpty(t, slots)
}

func TestSalonAvailability_MissingDate(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/salons/salon-1/availability", login.Token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// Bookings
// ─────────────────────────────────────────────

func TestBookingsByDate(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	date := time.Now().UTC().Add(24 * time.Hour).Format(dateQueryLayout)
	rec := doRequest(t, router, http.MethodGet, "/admin/bookings/by-date?date="+date, login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	bookings := decodeBody[[]models.Booking](t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking-1", bookings[0].ID)
}

func TestBookingsByDate_InvalidDate(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/bookings/by-date?date=tomorrow", login.Token, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[models.ErrorResponse](t, rec)
	assert.True(t, strings.Contains(body.Message, "date"))
}

func TestBookingsBySalon(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/bookings/salon/salon-2", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	bookings := decodeBody[[]models.Booking](t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking-2", bookings[0].ID)
}

func TestUpdateBookingStatus(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPut, "/admin/bookings/booking-1/status", login.Token,
		models.StatusUpdate{Status: "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := doRequest(t, router, http.MethodGet, "/admin/bookings/booking-1", login.Token, nil)
	booking := decodeBody[models.Booking](t, got)
	assert.Equal(t, models.BookingCompleted, booking.Status)
}

func TestUpdateBookingStatus_RejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPut, "/admin/bookings/booking-1/status", login.Token,
		models.StatusUpdate{Status: "scheduled"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ─────────────────────────────────────────────
// Payments
// ─────────────────────────────────────────────

func TestRefundPayment(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/admin/payments/payment-1/refund", login.Token,
		models.RefundRequest{Reason: "client cancelled"})

	require.Equal(t, http.StatusOK, rec.Code)

	payment := decodeBody[models.Payment](t, rec)
	assert.Equal(t, models.PaymentRefunded, payment.Status)
}

func TestRefundPayment_TwiceFails(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	first := doRequest(t, router, http.MethodPost, "/admin/payments/payment-1/refund", login.Token,
		models.RefundRequest{})
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, router, http.MethodPost, "/admin/payments/payment-1/refund", login.Token,
		models.RefundRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, second.Code)
}

func TestWebhookLogs(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/payments/webhook-logs", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	logs := decodeBody[[]models.WebhookLog](t, rec)
	assert.NotEmpty(t, logs)
}

// ─────────────────────────────────────────────
// Users, notifications, analytics
// ─────────────────────────────────────────────

func TestUserFavorites(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/users/user-1/favorites", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	favorites := decodeBody[[]models.Salon](t, rec)
	require.Len(t, favorites, 1)
	assert.Equal(t, "salon-1", favorites[0].ID)
}

func TestSendNotification(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/admin/notifications/send", login.Token,
		models.SendNotificationRequest{Title: "Closing early", Body: "Holiday hours"})

	require.Equal(t, http.StatusOK, rec.Code)

	sent := decodeBody[models.Notification](t, rec)
	assert.Equal(t, models.NotificationSent, sent.Status)
}

func TestAnalyticsOverview(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/analytics/overview", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	overview := decodeBody[models.AnalyticsOverview](t, rec)
	assert.Equal(t, 2, overview.TotalSalons)
	assert.Equal(t, 2, overview.TotalBookings)
}

func TestAnalyticsExport(t *testing.T) {
	router := newTestRouter(t)
	login := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodGet, "/admin/analytics/export", login.Token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "salon_id,name,bookings"))
}
