package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
)

// dualStore is the [Store] implementation writing through to two media.
// Reads prefer the cookie medium and fall back to the durable one, so a
// cleared cookie file does not end the session as long as the durable copy
// survives.
type dualStore struct {
	cookie  Medium
	durable Medium
	logger  *logger.Logger
}

// NewStore composes the two media into a redundant [Store].
func NewStore(cookie, durable Medium, logger *logger.Logger) Store {
	return &dualStore{cookie: cookie, durable: durable, logger: logger}
}

// NewFileStore opens the cookie file and SQLite database at the given paths
// and returns the composed store.
func NewFileStore(cookiePath, dbPath string, logger *logger.Logger) (Store, error) {
	cookie, err := NewCookieMedium(cookiePath)
	if err != nil {
		return nil, fmt.Errorf("open cookie medium: %w", err)
	}

	durable, err := NewSQLiteMedium(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open durable medium: %w", err)
	}

	return NewStore(cookie, durable, logger), nil
}

// SetAccessToken implements [Store].
func (s *dualStore) SetAccessToken(token string) error {
	return s.set(AccessTokenKey, token, AccessTokenTTL)
}

// SetRefreshToken implements [Store].
func (s *dualStore) SetRefreshToken(token string) error {
	return s.set(RefreshTokenKey, token, RefreshTokenTTL)
}

// AccessToken implements [Store].
func (s *dualStore) AccessToken() string {
	return s.get(AccessTokenKey)
}

// RefreshToken implements [Store].
func (s *dualStore) RefreshToken() string {
	return s.get(RefreshTokenKey)
}

// Clear implements [Store]. Both media are attempted even if the first
// removal fails.
func (s *dualStore) Clear() error {
	var errs []error
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		if err := s.cookie.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("cookie delete %s: %w", key, err))
		}
		if err := s.durable.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("durable delete %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (s *dualStore) set(key, value string, ttl time.Duration) error {
	var errs []error
	if err := s.cookie.Set(key, value, ttl); err != nil {
		errs = append(errs, fmt.Errorf("cookie set %s: %w", key, err))
	}
	if err := s.durable.Set(key, value, 0); err != nil {
		errs = append(errs, fmt.Errorf("durable set %s: %w", key, err))
	}

	return errors.Join(errs...)
}

func (s *dualStore) get(key string) string {
	value, err := s.cookie.Get(key)
	if err == nil {
		return value
	}
	if !errors.Is(err, ErrTokenNotFound) {
		s.logger.Warn().Err(err).Str("key", key).Msg("cookie medium read failed")
	}

	value, err = s.durable.Get(key)
	if err != nil {
		if !errors.Is(err, ErrTokenNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("durable medium read failed")
		}
		return ""
	}

	return value
}
