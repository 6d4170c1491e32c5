package workers

import (
	"context"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/service"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpiryWorker(t *testing.T) (*OfferExpiryWorker, *service.OfferService) {
	t.Helper()

	repos := store.NewMemoryRepositories(logger.Nop())
	offers := service.NewOfferService(repos, service.NopPublisher{}, logger.Nop())

	return NewOfferExpiryWorker(offers, config.Workers{}, logger.Nop()), offers
}

func TestOfferExpiryWorker_DefaultSchedule(t *testing.T) {
	w, _ := newExpiryWorker(t)

	assert.Equal(t, defaultOfferExpirySchedule, w.schedule)
}

func TestOfferExpiryWorker_SweepDeactivatesExpiredOffers(t *testing.T) {
	w, offers := newExpiryWorker(t)
	ctx := context.Background()

	now := time.Now().UTC()
	expired, err := offers.Create(ctx, models.Offer{
		SalonID: "salon-1", Title: "Flash Sale", DiscountPercentage: 30,
		StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
		Status: models.StatusActive,
	})
	require.NoError(t, err)

	w.sweep()

	got, err := offers.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, got.Status)

	// the seeded in-date offer is untouched
	active, err := offers.Get(ctx, "offer-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, active.Status)
}

func TestOfferExpiryWorker_InvalidScheduleDoesNotStart(t *testing.T) {
	repos := store.NewMemoryRepositories(logger.Nop())
	offers := service.NewOfferService(repos, service.NopPublisher{}, logger.Nop())

	w := NewOfferExpiryWorker(offers, config.Workers{OfferExpirySchedule: "every now and then"}, logger.Nop())

	// Run logs the schedule error and returns without scheduling
	w.Run()
	assert.Empty(t, w.cron.Entries())
}
