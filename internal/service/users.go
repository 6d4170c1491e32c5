package service

import (
	"context"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// UserService serves the customer read model to the dashboard.
type UserService struct {
	repos  *store.Repositories
	events EventPublisher
	logger *logger.Logger
}

func NewUserService(repos *store.Repositories, events EventPublisher, log *logger.Logger) *UserService {
	return &UserService{repos: repos, events: events, logger: log}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repos.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.repos.Users.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.repos.Users.Update(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventUserUpdated, Data: updated})

	return updated, nil
}

// Favorites resolves the user's favorite salon IDs into salon records.
// Favorites pointing at deleted salons are skipped.
func (s *UserService) Favorites(ctx context.Context, id string) ([]models.Salon, error) {
	user, err := s.repos.Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]models.Salon, 0, len(user.Favorites))
	for _, salonID := range user.Favorites {
		salon, getErr := s.repos.Salons.Get(ctx, salonID)
		if getErr != nil {
			continue
		}
		out = append(out, salon)
	}

	return out, nil
}
