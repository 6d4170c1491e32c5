package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/blushrz/salon-admin/models"
)

// refreshTimeout bounds the dedicated refresh call, independently of the
// per-request timeout.
const refreshTimeout = 10 * time.Second

// refresh collapses concurrent refresh attempts into a single in-flight
// call: the first caller performs POST /auth/admin/refresh, all other
// waiters share its outcome. On success every waiter receives the same new
// access token; on failure every waiter is rejected, tokens are cleared, and
// the session-expiry hook fires exactly once.
func (c *client) refresh(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return c.performRefresh(ctx)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (c *client) performRefresh(ctx context.Context) (string, error) {
	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		c.expireSession()
		return "", fmt.Errorf("%w: no refresh token available", ErrAuthentication)
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	var out models.RefreshResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&out).
		Post(epRefresh)
	if err != nil {
		c.expireSession()
		return "", fmt.Errorf("%w: refresh request: %v", ErrAuthentication, err)
	}
	if resp.StatusCode() != http.StatusOK || out.Token == "" {
		c.expireSession()
		return "", fmt.Errorf("%w: refresh rejected: %s", ErrAuthentication, serverMessage(resp))
	}

	if err = c.tokens.SetAccessToken(out.Token); err != nil {
		return "", fmt.Errorf("persist access token: %w", err)
	}
	if out.RefreshToken != "" {
		if err = c.tokens.SetRefreshToken(out.RefreshToken); err != nil {
			return "", fmt.Errorf("persist refresh token: %w", err)
		}
	}

	c.logger.Debug().Msg("access token refreshed")

	return out.Token, nil
}

// expireSession clears both token media and fires the session-expiry hook.
// Refresh failure is always fatal to the session: operating silently with a
// dead session is never allowed.
func (c *client) expireSession() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("clearing tokens after refresh failure")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
