package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// SalonService manages salon records and their sub-resources.
type SalonService struct {
	repos  *store.Repositories
	events EventPublisher
	logger *logger.Logger
}

func NewSalonService(repos *store.Repositories, events EventPublisher, log *logger.Logger) *SalonService {
	return &SalonService{repos: repos, events: events, logger: log}
}

func (s *SalonService) List(ctx context.Context) ([]models.Salon, error) {
	return s.repos.Salons.List(ctx)
}

func (s *SalonService) Get(ctx context.Context, id string) (models.Salon, error) {
	return s.repos.Salons.Get(ctx, id)
}

func (s *SalonService) Create(ctx context.Context, salon models.Salon) (models.Salon, error) {
	if err := validateSalon(salon); err != nil {
		return models.Salon{}, err
	}
	if salon.Status == "" {
		salon.Status = models.StatusActive
	}

	created, err := s.repos.Salons.Create(ctx, salon)
	if err != nil {
		return models.Salon{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: created.ID, Data: created})

	return created, nil
}

func (s *SalonService) Update(ctx context.Context, salon models.Salon) (models.Salon, error) {
	if err := validateSalon(salon); err != nil {
		return models.Salon{}, err
	}

	updated, err := s.repos.Salons.Update(ctx, salon)
	if err != nil {
		return models.Salon{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: updated.ID, Data: updated})

	return updated, nil
}

func (s *SalonService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Salons.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonUpdated, SalonID: id})

	return nil
}

// UpdateStatus flips the active flag and announces the change.
func (s *SalonService) UpdateStatus(ctx context.Context, id string, status models.EntityStatus) error {
	if status != models.StatusActive && status != models.StatusInactive {
		return fmt.Errorf("%w: status %q", ErrValidation, status)
	}

	salon, err := s.repos.Salons.Get(ctx, id)
	if err != nil {
		return err
	}
	salon.Status = status

	updated, err := s.repos.Salons.Update(ctx, salon)
	if err != nil {
		return err
	}

	s.events.Broadcast(models.Event{Type: models.EventSalonStatusChanged, SalonID: id, Data: updated})

	return nil
}

func (s *SalonService) Services(ctx context.Context, id string) ([]models.Service, error) {
	if _, err := s.repos.Salons.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.Services.ListBySalon(ctx, id)
}

func (s *SalonService) Staff(ctx context.Context, id string) ([]models.Staff, error) {
	if _, err := s.repos.Salons.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repos.Staff.ListBySalon(ctx, id)
}

// Availability reports, per staff member of the salon, the bookings already
// taken on the requested day. The dashboard derives free slots from it.
func (s *SalonService) Availability(ctx context.Context, id string, date time.Time) ([]models.AvailabilitySlot, error) {
	staff, err := s.Staff(ctx, id)
	if err != nil {
		return nil, err
	}

	dayBookings, err := s.repos.Bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.AvailabilitySlot, 0, len(staff))
	for _, member := range staff {
		slot := models.AvailabilitySlot{StaffID: member.ID, StaffName: member.Name, Booked: []models.Booking{}}
		for _, b := range dayBookings {
			if b.StaffID == member.ID && b.Status != models.BookingCancelled {
				slot.Booked = append(slot.Booked, b)
			}
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func validateSalon(salon models.Salon) error {
	if salon.Name == "" {
		return fmt.Errorf("%w: salon name is required", ErrValidation)
	}
	return nil
}
