package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers one text message. Satisfied by the Twilio client
// wrapper; tests plug in a recorder.
type SMSSender interface {
	SendSMS(to, body string) error
}

// twilioSender sends SMS through the Twilio REST API.
type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func newTwilioSender(cfg config.Notifier) *twilioSender {
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from: cfg.FromNumber,
	}
}

func (t *twilioSender) SendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	return err
}

// NotificationService manages admin-authored notifications. Delivery over
// SMS is config-gated: without Twilio credentials, sending only marks the
// notification sent and broadcasts the announcement event.
type NotificationService struct {
	notifications store.NotificationRepository
	events        EventPublisher
	sms           SMSSender
	logger        *logger.Logger
}

func NewNotificationService(repo store.NotificationRepository, events EventPublisher, cfg config.Notifier, log *logger.Logger) *NotificationService {
	s := &NotificationService{notifications: repo, events: events, logger: log}
	if cfg.AccountSID != "" && cfg.AuthToken != "" && cfg.FromNumber != "" {
		s.sms = newTwilioSender(cfg)
		log.Info().Msg("SMS delivery enabled")
	}

	return s
}

func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *NotificationService) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	if err := validateNotification(n); err != nil {
		return models.Notification{}, err
	}
	n.Status = models.NotificationDraft

	return s.notifications.Create(ctx, n)
}

func (s *NotificationService) Update(ctx context.Context, n models.Notification) (models.Notification, error) {
	if err := validateNotification(n); err != nil {
		return models.Notification{}, err
	}

	return s.notifications.Update(ctx, n)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}

// Send stores the notification as sent, pushes the announcement event to
// connected dashboards, and delivers over SMS when a recipient and a sender
// are configured. SMS failure does not fail the operation.
func (s *NotificationService) Send(ctx context.Context, req models.SendNotificationRequest) (models.Notification, error) {
	n := models.Notification{Title: req.Title, Body: req.Body, Recipient: req.Recipient}
	if err := validateNotification(n); err != nil {
		return models.Notification{}, err
	}

	n.Status = models.NotificationSent
	n.SentAt = time.Now().UTC()

	created, err := s.notifications.Create(ctx, n)
	if err != nil {
		return models.Notification{}, err
	}

	s.events.Broadcast(models.Event{Type: models.EventSystemAnnouncement, Data: created})

	if s.sms != nil && created.Recipient != "" {
		if smsErr := s.sms.SendSMS(created.Recipient, created.Title+": "+created.Body); smsErr != nil {
			s.logger.Warn().Err(smsErr).Str("recipient", created.Recipient).Msg("SMS delivery failed")
		}
	}

	return created, nil
}

func validateNotification(n models.Notification) error {
	if n.Title == "" {
		return fmt.Errorf("%w: notification title is required", ErrValidation)
	}
	return nil
}
