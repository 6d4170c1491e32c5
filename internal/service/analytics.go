package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
)

// AnalyticsService aggregates dashboard metrics over the repositories. The
// data volumes involved are small enough to compute on request.
type AnalyticsService struct {
	repos  *store.Repositories
	logger *logger.Logger
}

func NewAnalyticsService(repos *store.Repositories, log *logger.Logger) *AnalyticsService {
	return &AnalyticsService{repos: repos, logger: log}
}

func (s *AnalyticsService) Overview(ctx context.Context) (models.AnalyticsOverview, error) {
	salons, err := s.repos.Salons.List(ctx)
	if err != nil {
		return models.AnalyticsOverview{}, err
	}
	bookings, err := s.repos.Bookings.List(ctx)
	if err != nil {
		return models.AnalyticsOverview{}, err
	}
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return models.AnalyticsOverview{}, err
	}
	revenue, err := s.Revenue(ctx)
	if err != nil {
		return models.AnalyticsOverview{}, err
	}

	out := models.AnalyticsOverview{
		TotalSalons:   len(salons),
		TotalBookings: len(bookings),
		TotalUsers:    len(users),
		TotalRevenue:  revenue.Total,
	}
	for _, salon := range salons {
		if salon.Status == models.StatusActive {
			out.ActiveSalons++
		}
	}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			out.PendingBookings++
		case models.BookingCompleted:
			out.CompletedBookings++
		}
	}

	return out, nil
}

func (s *AnalyticsService) Bookings(ctx context.Context) (models.BookingsAnalytics, error) {
	bookings, err := s.repos.Bookings.List(ctx)
	if err != nil {
		return models.BookingsAnalytics{}, err
	}

	out := models.BookingsAnalytics{
		Total:    len(bookings),
		ByStatus: make(map[models.BookingStatus]int),
	}
	for _, b := range bookings {
		out.ByStatus[b.Status]++
	}

	return out, nil
}

func (s *AnalyticsService) Revenue(ctx context.Context) (models.RevenueAnalytics, error) {
	payments, err := s.repos.Payments.List(ctx)
	if err != nil {
		return models.RevenueAnalytics{}, err
	}

	out := models.RevenueAnalytics{Payments: len(payments)}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentCompleted:
			out.Total += p.Amount
		case models.PaymentRefunded:
			out.Refunded += p.Amount
		}
	}

	return out, nil
}

// Salons ranks salons by booking volume, busiest first.
func (s *AnalyticsService) Salons(ctx context.Context) ([]models.SalonAnalytics, error) {
	salons, err := s.repos.Salons.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repos.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.SalonID]++
	}

	out := make([]models.SalonAnalytics, 0, len(salons))
	for _, salon := range salons {
		out = append(out, models.SalonAnalytics{
			SalonID:  salon.ID,
			Name:     salon.Name,
			Bookings: counts[salon.ID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bookings > out[j].Bookings })

	return out, nil
}

// Services ranks services by booking volume and attributes revenue as the
// service price times its completed bookings.
func (s *AnalyticsService) Services(ctx context.Context) ([]models.ServiceAnalytics, error) {
	services, err := s.repos.Services.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repos.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	completed := make(map[string]int)
	for _, b := range bookings {
		counts[b.ServiceID]++
		if b.Status == models.BookingCompleted {
			completed[b.ServiceID]++
		}
	}

	out := make([]models.ServiceAnalytics, 0, len(services))
	for _, svc := range services {
		out = append(out, models.ServiceAnalytics{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Bookings:  counts[svc.ID],
			Revenue:   svc.Price * float64(completed[svc.ID]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bookings > out[j].Bookings })

	return out, nil
}

func (s *AnalyticsService) Users(ctx context.Context) (models.UsersAnalytics, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return models.UsersAnalytics{}, err
	}

	return models.UsersAnalytics{Total: len(users)}, nil
}

// Export renders the per-salon analytics as CSV.
func (s *AnalyticsService) Export(ctx context.Context) ([]byte, error) {
	salons, err := s.Salons(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err = w.Write([]string{"salon_id", "name", "bookings"}); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, row := range salons {
		if err = w.Write([]string{row.SalonID, row.Name, strconv.Itoa(row.Bookings)}); err != nil {
			return nil, fmt.Errorf("write export row: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
