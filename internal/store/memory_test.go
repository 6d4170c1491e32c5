package store

import (
	"context"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemory(t *testing.T) *Repositories {
	t.Helper()
	return NewMemoryRepositories(logger.Nop())
}

func TestMemory_SeededData(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()

	salons, err := repos.Salons.List(ctx)
	require.NoError(t, err)
	assert.Len(t, salons, 2)

	admin, err := repos.Admins.GetByEmail(ctx, "admin@blushrz.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.NotEmpty(t, admin.PasswordHash)

	// lookup is case-insensitive
	_, err = repos.Admins.GetByEmail(ctx, "ADMIN@blushrz.com")
	assert.NoError(t, err)
}

func TestMemory_SalonCRUD(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()

	created, err := repos.Salons.Create(ctx, models.Salon{Name: "New Salon", Status: models.StatusActive})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	created.Name = "Renamed Salon"
	updated, err := repos.Salons.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Salon", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := repos.Salons.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Salon", got.Name)

	require.NoError(t, repos.Salons.Delete(ctx, created.ID))
	_, err = repos.Salons.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SalonDeleteBlockedByBookings(t *testing.T) {
	repos := newMemory(t)

	err := repos.Salons.Delete(context.Background(), "salon-1")

	assert.ErrorIs(t, err, ErrReferenced)
}

func TestMemory_CreateDuplicateID(t *testing.T) {
	repos := newMemory(t)

	_, err := repos.Salons.Create(context.Background(), models.Salon{ID: "salon-1", Name: "Clone"})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemory_ServiceRequiresSalon(t *testing.T) {
	repos := newMemory(t)

	_, err := repos.Services.Create(context.Background(), models.Service{SalonID: "no-such-salon", Name: "Orphan"})

	assert.ErrorIs(t, err, ErrReferenced)
}

func TestMemory_BookingsByDate(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()

	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	_, err := repos.Bookings.Create(ctx, models.Booking{
		SalonID: "salon-1", ServiceID: "service-1", StaffID: "staff-1",
		CustomerName: "Amal", BookingDate: day.Add(10 * time.Hour),
	})
	require.NoError(t, err)
	_, err = repos.Bookings.Create(ctx, models.Booking{
		SalonID: "salon-1", ServiceID: "service-1", StaffID: "staff-1",
		CustomerName: "Zineb", BookingDate: day.Add(26 * time.Hour), // next day
	})
	require.NoError(t, err)

	got, err := repos.Bookings.ListByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Amal", got[0].CustomerName)
}

func TestMemory_BookingsBySalon(t *testing.T) {
	repos := newMemory(t)

	got, err := repos.Bookings.ListBySalon(context.Background(), "salon-2")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "booking-2", got[0].ID)
}

func TestMemory_BookingDefaultsToPending(t *testing.T) {
	repos := newMemory(t)

	created, err := repos.Bookings.Create(context.Background(), models.Booking{
		SalonID: "salon-1", ServiceID: "service-1", StaffID: "staff-1", CustomerName: "Amal",
		BookingDate: time.Now().Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, created.Status)
}

func TestMemory_OffersListExpired(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired, err := repos.Offers.Create(ctx, models.Offer{
		SalonID: "salon-1", Title: "Old Promo", Status: models.StatusActive,
		StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	got, err := repos.Offers.ListExpired(ctx, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, expired.ID, got[0].ID)

	// deactivated offers are not reported again
	expired.Status = models.StatusInactive
	_, err = repos.Offers.Update(ctx, expired)
	require.NoError(t, err)

	got, err = repos.Offers.ListExpired(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemory_AdminUpdateLastLogin(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Admins.UpdateLastLogin(ctx, "admin-1", at))

	admin, err := repos.Admins.Get(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, at, admin.LastLogin)

	assert.ErrorIs(t, repos.Admins.UpdateLastLogin(ctx, "nope", at), ErrNotFound)
}

func TestMemory_PaymentRefundUpdate(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()

	p, err := repos.Payments.Get(ctx, "payment-1")
	require.NoError(t, err)

	p.Status = models.PaymentRefunded
	p.RefundReason = "customer request"
	updated, err := repos.Payments.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, updated.Status)

	logs, err := repos.Payments.WebhookLogs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}

func TestMemory_NotificationLifecycle(t *testing.T) {
	repos := newMemory(t)
	ctx := context.Background()

	n, err := repos.Notifications.Create(ctx, models.Notification{Title: "Maintenance", Body: "Sunday 2am"})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationDraft, n.Status)

	n.Status = models.NotificationSent
	n.SentAt = time.Now().UTC()
	_, err = repos.Notifications.Update(ctx, n)
	require.NoError(t, err)

	require.NoError(t, repos.Notifications.Delete(ctx, n.ID))
	assert.ErrorIs(t, repos.Notifications.Delete(ctx, n.ID), ErrNotFound)
}
