package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/blushrz/salon-admin/internal/adapter"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
)

// Session tracks the logged-in admin on top of the API client. It caches the
// admin record after login so permission checks do not hit the network, and
// drops the cache on logout or session expiry.
type Session struct {
	api    adapter.AdminAPI
	logger *logger.Logger

	mu   sync.RWMutex
	user *models.Admin
}

// NewSession builds a session manager over the given API client. Wire
// [Session.Expire] into the client's session-expired hook so a failed token
// refresh also clears the cached identity.
func NewSession(api adapter.AdminAPI, log *logger.Logger) *Session {
	return &Session{api: api, logger: log}
}

// Login authenticates and caches the returned admin.
func (s *Session) Login(ctx context.Context, email, password string) (models.Admin, error) {
	admin, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.Admin{}, err
	}

	s.mu.Lock()
	s.user = &admin
	s.mu.Unlock()

	s.logger.Info().Str("email", admin.Email).Str("role", admin.Role).Msg("admin logged in")

	return admin, nil
}

// Logout ends the session and drops the cached admin.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.Expire()
	return err
}

// Expire drops the cached admin without a server round-trip. It is called on
// token-refresh failure.
func (s *Session) Expire() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CurrentUser returns the logged-in admin, fetching it from the server when
// not cached (a restarted client with persisted tokens).
func (s *Session) CurrentUser(ctx context.Context) (models.Admin, error) {
	s.mu.RLock()
	cached := s.user
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	if !s.api.IsAuthenticated() {
		return models.Admin{}, ErrNotAuthenticated
	}

	admin, err := s.api.CurrentUser(ctx)
	if err != nil {
		return models.Admin{}, err
	}

	s.mu.Lock()
	s.user = &admin
	s.mu.Unlock()

	return admin, nil
}

// IsAuthenticated reports whether the client currently holds credentials.
func (s *Session) IsAuthenticated() bool {
	return s.api.IsAuthenticated()
}

// Authorize checks the named permission against the logged-in admin.
func (s *Session) Authorize(ctx context.Context, permission string) error {
	admin, err := s.CurrentUser(ctx)
	if err != nil {
		return ErrNotAuthenticated
	}
	if !HasPermission(&admin, permission) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, permission)
	}

	return nil
}

// Guarded composes an authorization check in front of an action. It replaces
// wrapping-style route protection with an explicit guard function.
func (s *Session) Guarded(permission string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.Authorize(ctx, permission); err != nil {
			return err
		}
		return fn(ctx)
	}
}
