package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/blushrz/salon-admin/models"
)

// ── Salons ──────────────────────────────────────────────────────────────────

type pgSalons struct{ db *DB }

var salonColumns = []string{
	"id", "name", "address", "phone", "email", "status",
	"waiting_time", "home_service_available", "created_at", "updated_at",
}

func scanSalon(row squirrel.RowScanner) (models.Salon, error) {
	var s models.Salon
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.Status,
		&s.WaitingTime, &s.HomeServiceAvailable, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *pgSalons) List(ctx context.Context) ([]models.Salon, error) {
	query, args, err := qb.Select(salonColumns...).From("salons").OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]models.Salon, 0)
	for rows.Next() {
		s, scanErr := scanSalon(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *pgSalons) Get(ctx context.Context, id string) (models.Salon, error) {
	query, args, err := qb.Select(salonColumns...).From("salons").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Salon{}, err
	}

	s, err := scanSalon(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Salon{}, mapPgError(err)
	}

	return s, nil
}

func (r *pgSalons) Create(ctx context.Context, salon models.Salon) (models.Salon, error) {
	if salon.ID == "" {
		salon.ID = newID()
	}
	now := time.Now().UTC()
	salon.CreatedAt, salon.UpdatedAt = now, now

	query, args, err := qb.Insert("salons").Columns(salonColumns...).
		Values(salon.ID, salon.Name, salon.Address, salon.Phone, salon.Email, salon.Status,
			salon.WaitingTime, salon.HomeServiceAvailable, salon.CreatedAt, salon.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Salon{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Salon{}, mapPgError(err)
	}

	return salon, nil
}

func (r *pgSalons) Update(ctx context.Context, salon models.Salon) (models.Salon, error) {
	salon.UpdatedAt = time.Now().UTC()

	query, args, err := qb.Update("salons").
		Set("name", salon.Name).
		Set("address", salon.Address).
		Set("phone", salon.Phone).
		Set("email", salon.Email).
		Set("status", salon.Status).
		Set("waiting_time", salon.WaitingTime).
		Set("home_service_available", salon.HomeServiceAvailable).
		Set("updated_at", salon.UpdatedAt).
		Where(squirrel.Eq{"id": salon.ID}).ToSql()
	if err != nil {
		return models.Salon{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Salon{}, mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Salon{}, ErrNotFound
	}

	return r.Get(ctx, salon.ID)
}

func (r *pgSalons) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete("salons").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// ── Services ────────────────────────────────────────────────────────────────

type pgServices struct{ db *DB }

var serviceColumns = []string{
	"id", "salon_id", "name", "description", "price", "duration",
	"status", "created_at", "updated_at",
}

func scanService(row squirrel.RowScanner) (models.Service, error) {
	var s models.Service
	err := row.Scan(&s.ID, &s.SalonID, &s.Name, &s.Description, &s.Price, &s.Duration,
		&s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *pgServices) list(ctx context.Context, where any) ([]models.Service, error) {
	builder := qb.Select(serviceColumns...).From("services").OrderBy("name")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]models.Service, 0)
	for rows.Next() {
		s, scanErr := scanService(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *pgServices) List(ctx context.Context) ([]models.Service, error) {
	return r.list(ctx, nil)
}

func (r *pgServices) ListBySalon(ctx context.Context, salonID string) ([]models.Service, error) {
	return r.list(ctx, squirrel.Eq{"salon_id": salonID})
}

func (r *pgServices) Get(ctx context.Context, id string) (models.Service, error) {
	query, args, err := qb.Select(serviceColumns...).From("services").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Service{}, err
	}

	s, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Service{}, mapPgError(err)
	}

	return s, nil
}

func (r *pgServices) Create(ctx context.Context, service models.Service) (models.Service, error) {
	if service.ID == "" {
		service.ID = newID()
	}
	now := time.Now().UTC()
	service.CreatedAt, service.UpdatedAt = now, now

	query, args, err := qb.Insert("services").Columns(serviceColumns...).
		Values(service.ID, service.SalonID, service.Name, service.Description,
			service.Price, service.Duration, service.Status, service.CreatedAt, service.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Service{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Service{}, mapPgError(err)
	}

	return service, nil
}

func (r *pgServices) Update(ctx context.Context, service models.Service) (models.Service, error) {
	service.UpdatedAt = time.Now().UTC()

	query, args, err := qb.Update("services").
		Set("name", service.Name).
		Set("description", service.Description).
		Set("price", service.Price).
		Set("duration", service.Duration).
		Set("status", service.Status).
		Set("updated_at", service.UpdatedAt).
		Where(squirrel.Eq{"id": service.ID}).ToSql()
	if err != nil {
		return models.Service{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Service{}, mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Service{}, ErrNotFound
	}

	return r.Get(ctx, service.ID)
}

func (r *pgServices) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete("services").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// ── Staff ───────────────────────────────────────────────────────────────────

type pgStaff struct{ db *DB }

var staffColumns = []string{
	"id", "salon_id", "name", "email", "phone", "role",
	"specialization", "status", "created_at", "updated_at",
}

func scanStaff(row squirrel.RowScanner) (models.Staff, error) {
	var s models.Staff
	err := row.Scan(&s.ID, &s.SalonID, &s.Name, &s.Email, &s.Phone, &s.Role,
		&s.Specialization, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *pgStaff) list(ctx context.Context, where any) ([]models.Staff, error) {
	builder := qb.Select(staffColumns...).From("staff").OrderBy("name")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]models.Staff, 0)
	for rows.Next() {
		s, scanErr := scanStaff(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *pgStaff) List(ctx context.Context) ([]models.Staff, error) {
	return r.list(ctx, nil)
}

func (r *pgStaff) ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error) {
	return r.list(ctx, squirrel.Eq{"salon_id": salonID})
}

func (r *pgStaff) Get(ctx context.Context, id string) (models.Staff, error) {
	query, args, err := qb.Select(staffColumns...).From("staff").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Staff{}, err
	}

	s, err := scanStaff(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Staff{}, mapPgError(err)
	}

	return s, nil
}

func (r *pgStaff) Create(ctx context.Context, staff models.Staff) (models.Staff, error) {
	if staff.ID == "" {
		staff.ID = newID()
	}
	now := time.Now().UTC()
	staff.CreatedAt, staff.UpdatedAt = now, now

	query, args, err := qb.Insert("staff").Columns(staffColumns...).
		Values(staff.ID, staff.SalonID, staff.Name, staff.Email, staff.Phone, staff.Role,
			staff.Specialization, staff.Status, staff.CreatedAt, staff.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Staff{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Staff{}, mapPgError(err)
	}

	return staff, nil
}

func (r *pgStaff) Update(ctx context.Context, staff models.Staff) (models.Staff, error) {
	staff.UpdatedAt = time.Now().UTC()

	query, args, err := qb.Update("staff").
		Set("name", staff.Name).
		Set("email", staff.Email).
		Set("phone", staff.Phone).
		Set("role", staff.Role).
		Set("specialization", staff.Specialization).
		Set("status", staff.Status).
		Set("updated_at", staff.UpdatedAt).
		Where(squirrel.Eq{"id": staff.ID}).ToSql()
	if err != nil {
		return models.Staff{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Staff{}, mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Staff{}, ErrNotFound
	}

	return r.Get(ctx, staff.ID)
}

func (r *pgStaff) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete("staff").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// ── Bookings ────────────────────────────────────────────────────────────────

type pgBookings struct{ db *DB }

var bookingColumns = []string{
	"id", "salon_id", "service_id", "staff_id", "customer_name", "customer_email",
	"customer_phone", "booking_date", "status", "notes", "created_at", "updated_at",
}

func scanBooking(row squirrel.RowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.SalonID, &b.ServiceID, &b.StaffID, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &b.BookingDate, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *pgBookings) list(ctx context.Context, where any) ([]models.Booking, error) {
	builder := qb.Select(bookingColumns...).From("bookings").OrderBy("booking_date")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]models.Booking, 0)
	for rows.Next() {
		b, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *pgBookings) List(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, nil)
}

func (r *pgBookings) ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	return r.list(ctx, squirrel.Eq{"salon_id": salonID})
}

func (r *pgBookings) ListByDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	start, end := dayBounds(date)
	return r.list(ctx, squirrel.And{
		squirrel.GtOrEq{"booking_date": start},
		squirrel.Lt{"booking_date": end},
	})
}

func (r *pgBookings) Get(ctx context.Context, id string) (models.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).From("bookings").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Booking{}, err
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Booking{}, mapPgError(err)
	}

	return b, nil
}

func (r *pgBookings) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if booking.ID == "" {
		booking.ID = newID()
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	now := time.Now().UTC()
	booking.CreatedAt, booking.UpdatedAt = now, now

	query, args, err := qb.Insert("bookings").Columns(bookingColumns...).
		Values(booking.ID, booking.SalonID, booking.ServiceID, booking.StaffID,
			booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
			booking.BookingDate, booking.Status, booking.Notes, booking.CreatedAt, booking.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Booking{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Booking{}, mapPgError(err)
	}

	return booking, nil
}

func (r *pgBookings) Update(ctx context.Context, booking models.Booking) (models.Booking, error) {
	booking.UpdatedAt = time.Now().UTC()

	query, args, err := qb.Update("bookings").
		Set("service_id", booking.ServiceID).
		Set("staff_id", booking.StaffID).
		Set("customer_name", booking.CustomerName).
		Set("customer_email", booking.CustomerEmail).
		Set("customer_phone", booking.CustomerPhone).
		Set("booking_date", booking.BookingDate).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID}).ToSql()
	if err != nil {
		return models.Booking{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Booking{}, mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Booking{}, ErrNotFound
	}

	return r.Get(ctx, booking.ID)
}

func (r *pgBookings) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete("bookings").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// ── Offers ──────────────────────────────────────────────────────────────────

type pgOffers struct{ db *DB }

var offerColumns = []string{
	"id", "salon_id", "title", "description", "discount_percentage",
	"start_date", "end_date", "status", "created_at", "updated_at",
}

func scanOffer(row squirrel.RowScanner) (models.Offer, error) {
	var o models.Offer
	err := row.Scan(&o.ID, &o.SalonID, &o.Title, &o.Description, &o.DiscountPercentage,
		&o.StartDate, &o.EndDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *pgOffers) list(ctx context.Context, where any) ([]models.Offer, error) {
	builder := qb.Select(offerColumns...).From("offers").OrderBy("start_date")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]models.Offer, 0)
	for rows.Next() {
		o, scanErr := scanOffer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *pgOffers) List(ctx context.Context) ([]models.Offer, error) {
	return r.list(ctx, nil)
}

func (r *pgOffers) ListExpired(ctx context.Context, asOf time.Time) ([]models.Offer, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"status": models.StatusActive},
		squirrel.Lt{"end_date": asOf},
	})
}

func (r *pgOffers) Get(ctx context.Context, id string) (models.Offer, error) {
	query, args, err := qb.Select(offerColumns...).From("offers").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Offer{}, err
	}

	o, err := scanOffer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Offer{}, mapPgError(err)
	}

	return o, nil
}

func (r *pgOffers) Create(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.ID == "" {
		offer.ID = newID()
	}
	now := time.Now().UTC()
	offer.CreatedAt, offer.UpdatedAt = now, now

	query, args, err := qb.Insert("offers").Columns(offerColumns...).
		Values(offer.ID, offer.SalonID, offer.Title, offer.Description, offer.DiscountPercentage,
			offer.StartDate, offer.EndDate, offer.Status, offer.CreatedAt, offer.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Offer{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Offer{}, mapPgError(err)
	}

	return offer, nil
}

func (r *pgOffers) Update(ctx context.Context, offer models.Offer) (models.Offer, error) {
	offer.UpdatedAt = time.Now().UTC()

	query, args, err := qb.Update("offers").
		Set("title", offer.Title).
		Set("description", offer.Description).
		Set("discount_percentage", offer.DiscountPercentage).
		Set("start_date", offer.StartDate).
		Set("end_date", offer.EndDate).
		Set("status", offer.Status).
		Set("updated_at", offer.UpdatedAt).
		Where(squirrel.Eq{"id": offer.ID}).ToSql()
	if err != nil {
		return models.Offer{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Offer{}, mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Offer{}, ErrNotFound
	}

	return r.Get(ctx, offer.ID)
}

func (r *pgOffers) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Delete("offers").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// ── Admins ──────────────────────────────────────────────────────────────────

type pgAdmins struct{ db *DB }

var adminColumns = []string{
	"id", "name", "email", "role", "permissions", "avatar", "last_login", "password_hash",
}

// Permissions are stored as a JSON text column to keep the schema portable.
func scanAdmin(row squirrel.RowScanner) (models.Admin, error) {
	var (
		a         models.Admin
		perms     string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &perms, &a.Avatar,
		&lastLogin, &a.PasswordHash); err != nil {
		return models.Admin{}, err
	}

	if perms != "" {
		if err := json.Unmarshal([]byte(perms), &a.Permissions); err != nil {
			return models.Admin{}, err
		}
	}
	if lastLogin.Valid {
		a.LastLogin = lastLogin.Time
	}

	return a, nil
}

func (r *pgAdmins) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	query, args, err := qb.Select(adminColumns...).From("admins").
		Where("lower(email) = lower(?)", email).ToSql()
	if err != nil {
		return models.Admin{}, err
	}

	a, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Admin{}, mapPgError(err)
	}

	return a, nil
}

func (r *pgAdmins) Get(ctx context.Context, id string) (models.Admin, error) {
	query, args, err := qb.Select(adminColumns...).From("admins").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Admin{}, err
	}

	a, err := scanAdmin(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Admin{}, mapPgError(err)
	}

	return a, nil
}

func (r *pgAdmins) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if admin.ID == "" {
		admin.ID = newID()
	}

	perms, err := json.Marshal(admin.Permissions)
	if err != nil {
		return models.Admin{}, err
	}

	var lastLogin sql.NullTime
	if !admin.LastLogin.IsZero() {
		lastLogin = sql.NullTime{Time: admin.LastLogin, Valid: true}
	}

	query, args, err := qb.Insert("admins").Columns(adminColumns...).
		Values(admin.ID, admin.Name, admin.Email, admin.Role, string(perms),
			admin.Avatar, lastLogin, admin.PasswordHash).ToSql()
	if err != nil {
		return models.Admin{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Admin{}, mapPgError(err)
	}

	return admin, nil
}

func (r *pgAdmins) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query, args, err := qb.Update("admins").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}
