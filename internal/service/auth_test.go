package service

import (
	"context"
	"testing"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "salon-admin-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
	}
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	repos := store.NewMemoryRepositories(logger.Nop())
	return NewAuthService(repos.Admins, testAuthConfig(), logger.Nop())
}

func TestAuth_LoginSuccess(t *testing.T) {
	s := newAuthService(t)

	admin, pair, err := s.Login(context.Background(), "admin@blushrz.com", "admin123")

	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.False(t, admin.LastLogin.IsZero())
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	s := newAuthService(t)

	_, _, err := s.Login(context.Background(), "admin@blushrz.com", "nope")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	s := newAuthService(t)

	_, _, err := s.Login(context.Background(), "ghost@blushrz.com", "admin123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_VerifyAccessToken(t *testing.T) {
	s := newAuthService(t)
	_, pair, err := s.Login(context.Background(), "desk@blushrz.com", "admin123")
	require.NoError(t, err)

	admin, err := s.VerifyAccessToken(pair.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, "admin-2", admin.ID)
	assert.Equal(t, "staff", admin.Role)
	assert.Equal(t, []string{"bookings.view", "bookings.edit"}, admin.Permissions)
}

func TestAuth_VerifyRejectsRefreshToken(t *testing.T) {
	s := newAuthService(t)
	_, pair, err := s.Login(context.Background(), "admin@blushrz.com", "admin123")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(pair.RefreshToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_VerifyRejectsGarbage(t *testing.T) {
	s := newAuthService(t)

	_, err := s.VerifyAccessToken("not.a.jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_RefreshMintsNewPair(t *testing.T) {
	s := newAuthService(t)
	_, pair, err := s.Login(context.Background(), "admin@blushrz.com", "admin123")
	require.NoError(t, err)

	fresh, err := s.Refresh(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)

	admin, err := s.VerifyAccessToken(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	s := newAuthService(t)
	_, pair, err := s.Login(context.Background(), "admin@blushrz.com", "admin123")
	require.NoError(t, err)

	_, err = s.Refresh(context.Background(), pair.AccessToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_ExpiredTokenRejected(t *testing.T) {
	repos := store.NewMemoryRepositories(logger.Nop())
	cfg := testAuthConfig()
	cfg.AccessTokenTTL = -time.Minute
	s := NewAuthService(repos.Admins, cfg, logger.Nop())

	_, pair, err := s.Login(context.Background(), "admin@blushrz.com", "admin123")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(pair.AccessToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_WrongKeyRejected(t *testing.T) {
	repos := store.NewMemoryRepositories(logger.Nop())
	s := NewAuthService(repos.Admins, testAuthConfig(), logger.Nop())

	otherCfg := testAuthConfig()
	otherCfg.TokenSignKey = "another-key"
	other := NewAuthService(repos.Admins, otherCfg, logger.Nop())

	_, pair, err := other.Login(context.Background(), "admin@blushrz.com", "admin123")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(pair.AccessToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
