package auth

import (
	"context"
	"testing"

	"github.com/blushrz/salon-admin/internal/adapter"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI fakes the handful of AdminAPI methods the session manager uses.
type stubAPI struct {
	adapter.AdminAPI

	admin            models.Admin
	authed           bool
	loginErr         error
	currentUserCalls int
	logoutCalls      int
}

func (s *stubAPI) Login(_ context.Context, _, _ string) (models.Admin, error) {
	if s.loginErr != nil {
		return models.Admin{}, s.loginErr
	}
	s.authed = true
	return s.admin, nil
}

func (s *stubAPI) Logout(context.Context) error {
	s.authed = false
	s.logoutCalls++
	return nil
}

func (s *stubAPI) CurrentUser(context.Context) (models.Admin, error) {
	s.currentUserCalls++
	return s.admin, nil
}

func (s *stubAPI) IsAuthenticated() bool { return s.authed }

func newTestSession(api adapter.AdminAPI) *Session {
	return NewSession(api, logger.Nop())
}

func TestSession_LoginCachesAdmin(t *testing.T) {
	api := &stubAPI{admin: models.Admin{ID: "a1", Email: "ops@blushrz.com", Role: "staff"}}
	s := newTestSession(api)

	admin, err := s.Login(context.Background(), "ops@blushrz.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.ID)

	got, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Zero(t, api.currentUserCalls, "cached admin must not trigger a fetch")
}

func TestSession_LoginFailure(t *testing.T) {
	api := &stubAPI{loginErr: adapter.ErrAuthentication}
	s := newTestSession(api)

	_, err := s.Login(context.Background(), "ops@blushrz.com", "wrong")

	require.ErrorIs(t, err, adapter.ErrAuthentication)
	assert.False(t, s.IsAuthenticated())
}

func TestSession_LogoutClearsIdentity(t *testing.T) {
	api := &stubAPI{admin: models.Admin{ID: "a1"}}
	s := newTestSession(api)
	_, err := s.Login(context.Background(), "ops@blushrz.com", "secret")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, 1, api.logoutCalls)
	assert.False(t, s.IsAuthenticated())
	_, err = s.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSession_CurrentUserFetchesWhenNotCached(t *testing.T) {
	// persisted tokens from a previous run: authenticated but no cached admin
	api := &stubAPI{admin: models.Admin{ID: "a1"}, authed: true}
	s := newTestSession(api)

	got, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, 1, api.currentUserCalls)

	_, err = s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.currentUserCalls, "second lookup served from cache")
}

func TestSession_Authorize(t *testing.T) {
	api := &stubAPI{admin: models.Admin{ID: "a1", Role: "staff", Permissions: []string{"bookings.edit"}}}
	s := newTestSession(api)
	_, err := s.Login(context.Background(), "ops@blushrz.com", "secret")
	require.NoError(t, err)

	assert.NoError(t, s.Authorize(context.Background(), "bookings.edit"))
	assert.ErrorIs(t, s.Authorize(context.Background(), "bookings.delete"), ErrPermissionDenied)
}

func TestSession_AuthorizeWithoutLogin(t *testing.T) {
	s := newTestSession(&stubAPI{})

	assert.ErrorIs(t, s.Authorize(context.Background(), "bookings.view"), ErrNotAuthenticated)
}

func TestSession_Guarded(t *testing.T) {
	api := &stubAPI{admin: models.Admin{Role: "staff", Permissions: []string{"salons.view"}}}
	s := newTestSession(api)
	_, err := s.Login(context.Background(), "ops@blushrz.com", "secret")
	require.NoError(t, err)

	var ran bool
	action := s.Guarded("salons.view", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, action(context.Background()))
	assert.True(t, ran)

	ran = false
	denied := s.Guarded("salons.delete", func(context.Context) error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, denied(context.Background()), ErrPermissionDenied)
	assert.False(t, ran, "guarded action ran despite denial")
}

func TestSession_ExpireDropsCache(t *testing.T) {
	api := &stubAPI{admin: models.Admin{ID: "a1"}}
	s := newTestSession(api)
	_, err := s.Login(context.Background(), "ops@blushrz.com", "secret")
	require.NoError(t, err)

	s.Expire()

	// still holds tokens per the stub, so the next lookup refetches
	_, err = s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.currentUserCalls)
}
