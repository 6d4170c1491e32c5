package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// OfferService manages promotional offers, including the scheduled expiry of
// offers past their end date.
type OfferService struct {
	repos  *store.Repositories
	events EventPublisher
	logger *logger.Logger
}

func NewOfferService(repos *store.Repositories, events EventPublisher, log *logger.Logger) *OfferService {
	return &OfferService{repos: repos, events: events, logger: log}
}

func (s *OfferService) List(ctx context.Context) ([]models.Offer, error) {
	return s.repos.Offers.List(ctx)
}

func (s *OfferService) Get(ctx context.Context, id string) (models.Offer, error) {
	return s.repos.Offers.Get(ctx, id)
}

func (s *OfferService) Create(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if err := validateOffer(offer); err != nil {
		return models.Offer{}, err
	}
	if offer.Status == "" {
		offer.Status = models.StatusActive
	}

	created, err := s.repos.Offers.Create(ctx, offer)
	if err != nil {
		return models.Offer{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: created.SalonID, Data: created})

	return created, nil
}

func (s *OfferService) Update(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if err := validateOffer(offer); err != nil {
		return models.Offer{}, err
	}

	updated, err := s.repos.Offers.Update(ctx, offer)
	if err != nil {
		return models.Offer{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: updated.SalonID, Data: updated})

	return updated, nil
}

func (s *OfferService) Delete(ctx context.Context, id string) error {
	return s.repos.Offers.Delete(ctx, id)
}

// ExpireOutdated deactivates active offers whose end date has passed and
// announces each change. It returns the number of offers deactivated; the
// cron job calls it on its schedule.
func (s *OfferService) ExpireOutdated(ctx context.Context, asOf time.Time) (int, error) {
	expired, err := s.repos.Offers.ListExpired(ctx, asOf)
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for _, offer := range expired {
		offer.Status = models.StatusInactive
		updated, updateErr := s.repos.Offers.Update(ctx, offer)
		if updateErr != nil {
			s.logger.Warn().Err(updateErr).Str("offer", offer.ID).Msg("deactivating expired offer failed")
			continue
		}

		deactivated++
		s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: updated.SalonID, Data: updated})
	}

	if deactivated > 0 {
		s.logger.Info().Int("count", deactivated).Msg("expired offers deactivated")
	}

	return deactivated, nil
}

func validateOffer(offer models.Offer) error {
	switch {
	case offer.Title == "":
		return fmt.Errorf("%w: offer title is required", ErrValidation)
	case offer.SalonID == "":
		return fmt.Errorf("%w: offer salon is required", ErrValidation)
	case offer.DiscountPercentage < 0 || offer.DiscountPercentage > 100:
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	case !offer.EndDate.IsZero() && !offer.StartDate.IsZero() && offer.EndDate.Before(offer.StartDate):
		return fmt.Errorf("%w: offer ends before it starts", ErrValidation)
	}
	return nil
}
