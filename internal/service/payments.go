package service

import (
	"context"
	"fmt"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// PaymentService serves the payment read model and processes refunds. Actual
// charging happens in the payment provider; the dashboard only reconciles.
type PaymentService struct {
	repos  *store.Repositories
	events EventPublisher
	logger *logger.Logger
}

func NewPaymentService(repos *store.Repositories, events EventPublisher, log *logger.Logger) *PaymentService {
	return &PaymentService{repos: repos, events: events, logger: log}
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.repos.Payments.List(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id string) (models.Payment, error) {
	return s.repos.Payments.Get(ctx, id)
}

func (s *PaymentService) WebhookLogs(ctx context.Context) ([]models.WebhookLog, error) {
	return s.repos.Payments.WebhookLogs(ctx)
}

// Refund marks a completed payment refunded. Only completed payments can be
// refunded; a second refund of the same payment is rejected.
func (s *PaymentService) Refund(ctx context.Context, id, reason string) (models.Payment, error) {
	payment, err := s.repos.Payments.Get(ctx, id)
	if err != nil {
		return models.Payment{}, err
	}
	if payment.Status != models.PaymentCompleted {
		return models.Payment{}, fmt.Errorf("%w: only completed payments can be refunded", ErrValidation)
	}

	payment.Status = models.PaymentRefunded
	payment.RefundReason = reason

	updated, err := s.repos.Payments.Update(ctx, payment)
	if err != nil {
		return models.Payment{}, err
	}

	s.logger.Info().Str("payment", id).Str("reason", reason).Msg("payment refunded")
	s.events.Broadcast(models.Event{Type: models.EventPaymentRefunded, Data: updated})

	return updated, nil
}
