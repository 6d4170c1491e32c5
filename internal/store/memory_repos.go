package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/blushrz/salon-admin/models"
)

// ── Salons ──────────────────────────────────────────────────────────────────

type memorySalons struct{ db *memoryDB }

func (r *memorySalons) List(context.Context) ([]models.Salon, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Salon, 0, len(r.db.salons))
	for _, s := range r.db.salons {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memorySalons) Get(_ context.Context, id string) (models.Salon, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.salons[id]
	if !ok {
		return models.Salon{}, ErrNotFound
	}
	return s, nil
}

func (r *memorySalons) Create(_ context.Context, salon models.Salon) (models.Salon, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if salon.ID == "" {
		salon.ID = newID()
	} else if _, exists := r.db.salons[salon.ID]; exists {
		return models.Salon{}, ErrDuplicate
	}

	now := time.Now().UTC()
	salon.CreatedAt, salon.UpdatedAt = now, now
	r.db.salons[salon.ID] = salon

	return salon, nil
}

func (r *memorySalons) Update(_ context.Context, salon models.Salon) (models.Salon, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.salons[salon.ID]
	if !ok {
		return models.Salon{}, ErrNotFound
	}

	salon.CreatedAt = existing.CreatedAt
	salon.UpdatedAt = time.Now().UTC()
	r.db.salons[salon.ID] = salon

	return salon, nil
}

func (r *memorySalons) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.salons[id]; !ok {
		return ErrNotFound
	}
	for _, b := range r.db.bookings {
		if b.SalonID == id {
			return ErrReferenced
		}
	}
	delete(r.db.salons, id)

	return nil
}

// ── Services ────────────────────────────────────────────────────────────────

type memoryServices struct{ db *memoryDB }

func (r *memoryServices) List(context.Context) ([]models.Service, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Service, 0, len(r.db.services))
	for _, s := range r.db.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryServices) ListBySalon(_ context.Context, salonID string) ([]models.Service, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, s := range r.db.services {
		if s.SalonID == salonID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryServices) Get(_ context.Context, id string) (models.Service, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}
	return s, nil
}

func (r *memoryServices) Create(_ context.Context, service models.Service) (models.Service, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.salons[service.SalonID]; !ok {
		return models.Service{}, ErrReferenced
	}
	if service.ID == "" {
		service.ID = newID()
	} else if _, exists := r.db.services[service.ID]; exists {
		return models.Service{}, ErrDuplicate
	}

	now := time.Now().UTC()
	service.CreatedAt, service.UpdatedAt = now, now
	r.db.services[service.ID] = service

	return service, nil
}

func (r *memoryServices) Update(_ context.Context, service models.Service) (models.Service, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.services[service.ID]
	if !ok {
		return models.Service{}, ErrNotFound
	}

	service.CreatedAt = existing.CreatedAt
	service.UpdatedAt = time.Now().UTC()
	r.db.services[service.ID] = service

	return service, nil
}

func (r *memoryServices) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.services[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.services, id)

	return nil
}

// ── Staff ───────────────────────────────────────────────────────────────────

type memoryStaff struct{ db *memoryDB }

func (r *memoryStaff) List(context.Context) ([]models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Staff, 0, len(r.db.staff))
	for _, m := range r.db.staff {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryStaff) ListBySalon(_ context.Context, salonID string) ([]models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Staff, 0)
	for _, m := range r.db.staff {
		if m.SalonID == salonID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryStaff) Get(_ context.Context, id string) (models.Staff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m, ok := r.db.staff[id]
	if !ok {
		return models.Staff{}, ErrNotFound
	}
	return m, nil
}

func (r *memoryStaff) Create(_ context.Context, staff models.Staff) (models.Staff, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.salons[staff.SalonID]; !ok {
		return models.Staff{}, ErrReferenced
	}
	if staff.ID == "" {
		staff.ID = newID()
	} else if _, exists := r.db.staff[staff.ID]; exists {
		return models.Staff{}, ErrDuplicate
	}

	now := time.Now().UTC()
	staff.CreatedAt, staff.UpdatedAt = now, now
	r.db.staff[staff.ID] = staff

	return staff, nil
}

func (r *memoryStaff) Update(_ context.Context, staff models.Staff) (models.Staff, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.staff[staff.ID]
	if !ok {
		return models.Staff{}, ErrNotFound
	}

	staff.CreatedAt = existing.CreatedAt
	staff.UpdatedAt = time.Now().UTC()
	r.db.staff[staff.ID] = staff

	return staff, nil
}

func (r *memoryStaff) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.staff[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.staff, id)

	return nil
}

// ── Bookings ────────────────────────────────────────────────────────────────

type memoryBookings struct{ db *memoryDB }

func (r *memoryBookings) List(context.Context) ([]models.Booking, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.collect(func(models.Booking) bool { return true }), nil
}

func (r *memoryBookings) ListBySalon(_ context.Context, salonID string) ([]models.Booking, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.collect(func(b models.Booking) bool { return b.SalonID == salonID }), nil
}

func (r *memoryBookings) ListByDate(_ context.Context, date time.Time) ([]models.Booking, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.collect(func(b models.Booking) bool { return sameDay(b.BookingDate, date) }), nil
}

// collect must be called with the lock held.
func (r *memoryBookings) collect(keep func(models.Booking) bool) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range r.db.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.Before(out[j].BookingDate) })

	return out
}

func (r *memoryBookings) Get(_ context.Context, id string) (models.Booking, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	b, ok := r.db.bookings[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	return b, nil
}

func (r *memoryBookings) Create(_ context.Context, booking models.Booking) (models.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.salons[booking.SalonID]; !ok {
		return models.Booking{}, ErrReferenced
	}
	if booking.ID == "" {
		booking.ID = newID()
	} else if _, exists := r.db.bookings[booking.ID]; exists {
		return models.Booking{}, ErrDuplicate
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}

	now := time.Now().UTC()
	booking.CreatedAt, booking.UpdatedAt = now, now
	r.db.bookings[booking.ID] = booking

	return booking, nil
}

func (r *memoryBookings) Update(_ context.Context, booking models.Booking) (models.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.bookings[booking.ID]
	if !ok {
		return models.Booking{}, ErrNotFound
	}

	booking.CreatedAt = existing.CreatedAt
	booking.UpdatedAt = time.Now().UTC()
	r.db.bookings[booking.ID] = booking

	return booking, nil
}

func (r *memoryBookings) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.bookings, id)

	return nil
}

// ── Offers ──────────────────────────────────────────────────────────────────

type memoryOffers struct{ db *memoryDB }

func (r *memoryOffers) List(context.Context) ([]models.Offer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Offer, 0, len(r.db.offers))
	for _, o := range r.db.offers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })

	return out, nil
}

func (r *memoryOffers) ListExpired(_ context.Context, asOf time.Time) ([]models.Offer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Offer, 0)
	for _, o := range r.db.offers {
		if o.Status == models.StatusActive && o.EndDate.Before(asOf) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })

	return out, nil
}

func (r *memoryOffers) Get(_ context.Context, id string) (models.Offer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	o, ok := r.db.offers[id]
	if !ok {
		return models.Offer{}, ErrNotFound
	}
	return o, nil
}

func (r *memoryOffers) Create(_ context.Context, offer models.Offer) (models.Offer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.salons[offer.SalonID]; !ok {
		return models.Offer{}, ErrReferenced
	}
	if offer.ID == "" {
		offer.ID = newID()
	} else if _, exists := r.db.offers[offer.ID]; exists {
		return models.Offer{}, ErrDuplicate
	}

	now := time.Now().UTC()
	offer.CreatedAt, offer.UpdatedAt = now, now
	r.db.offers[offer.ID] = offer

	return offer, nil
}

func (r *memoryOffers) Update(_ context.Context, offer models.Offer) (models.Offer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.offers[offer.ID]
	if !ok {
		return models.Offer{}, ErrNotFound
	}

	offer.CreatedAt = existing.CreatedAt
	offer.UpdatedAt = time.Now().UTC()
	r.db.offers[offer.ID] = offer

	return offer, nil
}

func (r *memoryOffers) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.offers[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.offers, id)

	return nil
}

// ── Admins ──────────────────────────────────────────────────────────────────

type memoryAdmins struct{ db *memoryDB }

func (r *memoryAdmins) GetByEmail(_ context.Context, email string) (models.Admin, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.admins {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (r *memoryAdmins) Get(_ context.Context, id string) (models.Admin, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.admins[id]
	if !ok {
		return models.Admin{}, ErrNotFound
	}
	return a, nil
}

func (r *memoryAdmins) Create(_ context.Context, admin models.Admin) (models.Admin, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if admin.ID == "" {
		admin.ID = newID()
	}
	if _, ok := r.db.admins[admin.ID]; ok {
		return models.Admin{}, ErrDuplicate
	}
	for _, a := range r.db.admins {
		if strings.EqualFold(a.Email, admin.Email) {
			return models.Admin{}, ErrDuplicate
		}
	}
	r.db.admins[admin.ID] = admin

	return admin, nil
}

func (r *memoryAdmins) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, ok := r.db.admins[id]
	if !ok {
		return ErrNotFound
	}
	a.LastLogin = at
	r.db.admins[id] = a

	return nil
}

// ── Users ───────────────────────────────────────────────────────────────────

type memoryUsers struct{ db *memoryDB }

func (r *memoryUsers) List(context.Context) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *memoryUsers) Get(_ context.Context, id string) (models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUsers) Update(_ context.Context, user models.User) (models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.users[user.ID]
	if !ok {
		return models.User{}, ErrNotFound
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	r.db.users[user.ID] = user

	return user, nil
}

// ── Payments ────────────────────────────────────────────────────────────────

type memoryPayments struct{ db *memoryDB }

func (r *memoryPayments) List(context.Context) ([]models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Payment, 0, len(r.db.payments))
	for _, p := range r.db.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r *memoryPayments) Get(_ context.Context, id string) (models.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.payments[id]
	if !ok {
		return models.Payment{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryPayments) Update(_ context.Context, payment models.Payment) (models.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.payments[payment.ID]
	if !ok {
		return models.Payment{}, ErrNotFound
	}

	payment.CreatedAt = existing.CreatedAt
	payment.UpdatedAt = time.Now().UTC()
	r.db.payments[payment.ID] = payment

	return payment, nil
}

func (r *memoryPayments) WebhookLogs(context.Context) ([]models.WebhookLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.WebhookLog, len(r.db.webhookLogs))
	copy(out, r.db.webhookLogs)

	return out, nil
}

// ── Notifications ───────────────────────────────────────────────────────────

type memoryNotifications struct{ db *memoryDB }

func (r *memoryNotifications) List(context.Context) ([]models.Notification, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Notification, 0, len(r.db.notifications))
	for _, n := range r.db.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r *memoryNotifications) Get(_ context.Context, id string) (models.Notification, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n, ok := r.db.notifications[id]
	if !ok {
		return models.Notification{}, ErrNotFound
	}
	return n, nil
}

func (r *memoryNotifications) Create(_ context.Context, n models.Notification) (models.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if n.ID == "" {
		n.ID = newID()
	} else if _, exists := r.db.notifications[n.ID]; exists {
		return models.Notification{}, ErrDuplicate
	}
	if n.Status == "" {
		n.Status = models.NotificationDraft
	}

	now := time.Now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now
	r.db.notifications[n.ID] = n

	return n, nil
}

func (r *memoryNotifications) Update(_ context.Context, n models.Notification) (models.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.notifications[n.ID]
	if !ok {
		return models.Notification{}, ErrNotFound
	}

	n.CreatedAt = existing.CreatedAt
	n.UpdatedAt = time.Now().UTC()
	r.db.notifications[n.ID] = n

	return n, nil
}

func (r *memoryNotifications) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.notifications[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.notifications, id)

	return nil
}
