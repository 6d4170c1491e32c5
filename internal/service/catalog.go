package service

import (
	"context"
	"fmt"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// CatalogService manages the bookable services offered by the salons.
type CatalogService struct {
	repos  *store.Repositories
	logger *logger.Logger
}

func NewCatalogService(repos *store.Repositories, log *logger.Logger) *CatalogService {
	return &CatalogService{repos: repos, logger: log}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.repos.Services.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (models.Service, error) {
	return s.repos.Services.Get(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, service models.Service) (models.Service, error) {
	if err := validateService(service); err != nil {
		return models.Service{}, err
	}
	if service.Status == "" {
		service.Status = models.StatusActive
	}

	return s.repos.Services.Create(ctx, service)
}

func (s *CatalogService) Update(ctx context.Context, service models.Service) (models.Service, error) {
	if err := validateService(service); err != nil {
		return models.Service{}, err
	}

	return s.repos.Services.Update(ctx, service)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repos.Services.Delete(ctx, id)
}

func validateService(service models.Service) error {
	switch {
	case service.Name == "":
		return fmt.Errorf("%w: service name is required", ErrValidation)
	case service.SalonID == "":
		return fmt.Errorf("%w: service salon is required", ErrValidation)
	case service.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	case service.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	return nil
}

// StaffService manages salon staff members.
type StaffService struct {
	repos  *store.Repositories
	logger *logger.Logger
}

func NewStaffService(repos *store.Repositories, log *logger.Logger) *StaffService {
	return &StaffService{repos: repos, logger: log}
}

func (s *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.repos.Staff.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id string) (models.Staff, error) {
	return s.repos.Staff.Get(ctx, id)
}

func (s *StaffService) Create(ctx context.Context, staff models.Staff) (models.Staff, error) {
	if err := validateStaff(staff); err != nil {
		return models.Staff{}, err
	}
	if staff.Status == "" {
		staff.Status = models.StatusActive
	}

	return s.repos.Staff.Create(ctx, staff)
}

func (s *StaffService) Update(ctx context.Context, staff models.Staff) (models.Staff, error) {
	if err := validateStaff(staff); err != nil {
		return models.Staff{}, err
	}

	return s.repos.Staff.Update(ctx, staff)
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.repos.Staff.Delete(ctx, id)
}

func validateStaff(staff models.Staff) error {
	switch {
	case staff.Name == "":
		return fmt.Errorf("%w: staff name is required", ErrValidation)
	case staff.SalonID == "":
		return fmt.Errorf("%w: staff salon is required", ErrValidation)
	}
	return nil
}
