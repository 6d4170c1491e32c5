package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// qb is the shared squirrel builder using PostgreSQL placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DB wraps the PostgreSQL connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings the PostgreSQL pool.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("connected to database")

	return &DB{DB: conn, logger: log}, nil
}

// NewPostgresRepositories builds the repository set backed by PostgreSQL for
// the core entities and admin accounts. Users, payments and notifications
// are served by the in-memory store until they get their own tables.
func NewPostgresRepositories(db *DB, log *logger.Logger) *Repositories {
	mem := NewMemoryRepositories(log)

	return &Repositories{
		Salons:        &pgSalons{db: db},
		Services:      &pgServices{db: db},
		Staff:         &pgStaff{db: db},
		Bookings:      &pgBookings{db: db},
		Offers:        &pgOffers{db: db},
		Admins:        &pgAdmins{db: db},
		Users:         mem.Users,
		Payments:      mem.Payments,
		Notifications: mem.Notifications,
	}
}

// mapPgError translates driver errors into the package sentinels.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicate
		case pgerrcode.ForeignKeyViolation:
			return ErrReferenced
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

// dayBounds returns the UTC [start, end) interval of date's calendar day.
func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
