package workers

import (
	"context"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/service"
	"github.com/robfig/cron/v3"
)

const (
	// defaultOfferExpirySchedule is used when no cron expression is
	// configured.
	defaultOfferExpirySchedule = "@hourly"

	// offerExpiryTimeout bounds a single expiry sweep.
	offerExpiryTimeout = 30 * time.Second
)

// OfferExpiryWorker periodically deactivates offers whose end date has
// passed. Each deactivation pushes a salon update event to connected
// dashboards through the offer service.
type OfferExpiryWorker struct {
	offers   *service.OfferService
	schedule string
	cron     *cron.Cron

	logger *logger.Logger
}

func NewOfferExpiryWorker(offers *service.OfferService, cfg config.Workers, logger *logger.Logger) *OfferExpiryWorker {
	schedule := cfg.OfferExpirySchedule
	if schedule == "" {
		schedule = defaultOfferExpirySchedule
	}

	return &OfferExpiryWorker{
		offers:   offers,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

func (w *OfferExpiryWorker) Run() {
	if _, err := w.cron.AddFunc(w.schedule, w.sweep); err != nil {
		w.logger.Error().Err(err).Str("schedule", w.schedule).Msg("invalid offer-expiry schedule, worker not started")
		return
	}

	w.cron.Start()
	w.logger.Info().Str("schedule", w.schedule).Msg("offer-expiry worker started")
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (w *OfferExpiryWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info().Msg("offer-expiry worker stopped")
}

func (w *OfferExpiryWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), offerExpiryTimeout)
	defer cancel()

	expired, err := w.offers.ExpireOutdated(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Err(err).Msg("offer-expiry sweep failed")
		return
	}

	if expired > 0 {
		w.logger.Info().Int("expired", expired).Msg("deactivated outdated offers")
	}
}
