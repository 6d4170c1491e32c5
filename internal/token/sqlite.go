package token

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createTokensTable = `CREATE TABLE IF NOT EXISTS tokens (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// sqliteMedium is the durable token medium backed by a local SQLite file.
// Entries have no expiry; the cookie medium owns short-lived semantics.
type sqliteMedium struct {
	db *sql.DB
}

// NewSQLiteMedium opens (creating if necessary) the SQLite database at path
// and ensures the tokens table exists.
func NewSQLiteMedium(path string) (Medium, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open token database: %w", err)
	}

	if _, err = db.Exec(createTokensTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tokens table: %w", err)
	}

	return &sqliteMedium{db: db}, nil
}

// NewSQLiteMediumWithDB wraps an already opened database handle. The schema
// is assumed to exist. Used by tests.
func NewSQLiteMediumWithDB(db *sql.DB) Medium {
	return &sqliteMedium{db: db}
}

// Set implements [Medium]. ttl is ignored: the durable medium keeps tokens
// until Clear.
func (m *sqliteMedium) Set(key, value string, _ time.Duration) error {
	_, err := m.db.Exec(
		`INSERT INTO tokens (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	return nil
}

// Get implements [Medium].
func (m *sqliteMedium) Get(key string) (string, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM tokens WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("load token: %w", err)
	}

	return value, nil
}

// Delete implements [Medium].
func (m *sqliteMedium) Delete(key string) error {
	if _, err := m.db.Exec(`DELETE FROM tokens WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}

// Close implements [Medium].
func (m *sqliteMedium) Close() error {
	return m.db.Close()
}
