package service

import (
	"context"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffers_Validation(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := svcs.Offers.Create(ctx, models.Offer{SalonID: "salon-1", Title: "Promo", DiscountPercentage: 120})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svcs.Offers.Create(ctx, models.Offer{
		SalonID: "salon-1", Title: "Promo", DiscountPercentage: 10,
		StartDate: now, EndDate: now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svcs.Offers.Create(ctx, models.Offer{SalonID: "salon-1", DiscountPercentage: 10})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOffers_ExpireOutdated(t *testing.T) {
	svcs, events := newTestServices(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired, err := svcs.Offers.Create(ctx, models.Offer{
		SalonID: "salon-1", Title: "Old Promo", DiscountPercentage: 15,
		StartDate: now.Add(-72 * time.Hour), EndDate: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	current, err := svcs.Offers.Create(ctx, models.Offer{
		SalonID: "salon-1", Title: "Current Promo", DiscountPercentage: 15,
		StartDate: now.Add(-time.Hour), EndDate: now.Add(72 * time.Hour),
	})
	require.NoError(t, err)

	count, err := svcs.Offers.ExpireOutdated(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svcs.Offers.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, got.Status)

	got, err = svcs.Offers.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)

	ev := events.last(t)
	assert.Equal(t, models.EventSalonUpdated, ev.Type)
	assert.Equal(t, "salon-1", ev.SalonID)

	// a second run finds nothing
	count, err = svcs.Offers.ExpireOutdated(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, count)
}
