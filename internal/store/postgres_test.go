package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func TestPgSalons_Get(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM salons WHERE id = \$1`).
		WithArgs("salon-1").
		WillReturnRows(sqlmock.NewRows(salonColumns).
			AddRow("salon-1", "Glow Beauty Lounge", "12 Rose Street", "+212600000001",
				"hello@glowlounge.ma", "active", "15 min", true, now, now))

	repo := &pgSalons{db: db}
	got, err := repo.Get(context.Background(), "salon-1")

	require.NoError(t, err)
	assert.Equal(t, "Glow Beauty Lounge", got.Name)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSalons_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM salons`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &pgSalons{db: db}
	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPgSalons_DeleteNoRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM salons WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &pgSalons{db: db}
	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPgServices_CreateForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO services`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	repo := &pgServices{db: db}
	_, err := repo.Create(context.Background(), models.Service{SalonID: "missing", Name: "Orphan"})

	assert.ErrorIs(t, err, ErrReferenced)
}

func TestPgBookings_ListByDate(t *testing.T) {
	db, mock := newMockDB(t)
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	booked := day.Add(10 * time.Hour)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE \(booking_date >= \$1 AND booking_date < \$2\)`).
		WithArgs(day, day.Add(24*time.Hour)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("booking-1", "salon-1", "service-1", "staff-1", "Amal", "", "",
				booked, "confirmed", "", booked, booked))

	repo := &pgBookings{db: db}
	got, err := repo.ListByDate(context.Background(), day.Add(15*time.Hour))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.BookingConfirmed, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgAdmins_GetByEmailParsesPermissions(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM admins WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("desk@blushrz.com").
		WillReturnRows(sqlmock.NewRows(adminColumns).
			AddRow("admin-2", "Front Desk", "desk@blushrz.com", "staff",
				`["bookings.view","bookings.edit"]`, "", nil, "$2a$10$hash"))

	repo := &pgAdmins{db: db}
	got, err := repo.GetByEmail(context.Background(), "desk@blushrz.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"bookings.view", "bookings.edit"}, got.Permissions)
	assert.True(t, got.LastLogin.IsZero())
}

func TestMapPgError(t *testing.T) {
	assert.NoError(t, mapPgError(nil))
	assert.ErrorIs(t, mapPgError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapPgError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}), ErrDuplicate)
	assert.ErrorIs(t, mapPgError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), ErrReferenced)
}
