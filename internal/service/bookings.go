package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// BookingService manages the booking lifecycle and publishes the
// corresponding push events.
type BookingService struct {
	repos  *store.Repositories
	events EventPublisher
	logger *logger.Logger
}

func NewBookingService(repos *store.Repositories, events EventPublisher, log *logger.Logger) *BookingService {
	return &BookingService{repos: repos, events: events, logger: log}
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.repos.Bookings.List(ctx)
}

func (s *BookingService) ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	return s.repos.Bookings.ListBySalon(ctx, salonID)
}

func (s *BookingService) ListByDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	return s.repos.Bookings.ListByDate(ctx, date)
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	return s.repos.Bookings.Get(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if err := validateBooking(booking); err != nil {
		return models.Booking{}, err
	}

	created, err := s.repos.Bookings.Create(ctx, booking)
	if err != nil {
		return models.Booking{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventBookingCreated, SalonID: created.SalonID, Data: created})

	return created, nil
}

func (s *BookingService) Update(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if err := validateBooking(booking); err != nil {
		return models.Booking{}, err
	}

	updated, err := s.repos.Bookings.Update(ctx, booking)
	if err != nil {
		return models.Booking{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventBookingUpdated, SalonID: updated.SalonID, Data: updated})

	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.repos.Bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repos.Bookings.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Broadcast(models.Event{Type: models.EventBookingCancelled, SalonID: booking.SalonID, Data: booking})

	return nil
}

// UpdateStatus moves a booking through its lifecycle and announces the
// transition with the status-specific event.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if !models.ValidBookingStatus(status) {
		return fmt.Errorf("%w: booking status %q", ErrValidation, status)
	}

	booking, err := s.repos.Bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	booking.Status = status

	updated, err := s.repos.Bookings.Update(ctx, booking)
	if err != nil {
		return err
	}

	s.events.Broadcast(models.Event{Type: statusEvent(status), SalonID: updated.SalonID, Data: updated})

	return nil
}

func statusEvent(status models.BookingStatus) string {
	switch status {
	case models.BookingCancelled:
		return models.EventBookingCancelled
	case models.BookingCompleted:
		return models.EventBookingCompleted
	default:
		return models.EventBookingUpdated
	}
}

func validateBooking(booking models.Booking) error {
	switch {
	case booking.SalonID == "":
		return fmt.Errorf("%w: booking salon is required", ErrValidation)
	case booking.ServiceID == "":
		return fmt.Errorf("%w: booking service is required", ErrValidation)
	case booking.StaffID == "":
		return fmt.Errorf("%w: booking staff member is required", ErrValidation)
	case booking.CustomerName == "":
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	case booking.BookingDate.IsZero():
		return fmt.Errorf("%w: booking date is required", ErrValidation)
	}
	if booking.Status != "" && !models.ValidBookingStatus(booking.Status) {
		return fmt.Errorf("%w: booking status %q", ErrValidation, booking.Status)
	}
	return nil
}
