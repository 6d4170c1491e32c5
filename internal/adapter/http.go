package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/token"
	"github.com/blushrz/salon-admin/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

// client is the HTTP implementation of [AdminAPI] built on resty. It is an
// explicitly constructed object: no package-level state, lifecycle owned by
// the caller.
type client struct {
	http   *resty.Client
	tokens token.Store

	refreshGroup singleflight.Group

	// onSessionExpired fires after a refresh failure, once tokens are
	// cleared. The application uses it to return to the login entry point.
	onSessionExpired func()

	logger *logger.Logger
}

// Option configures the client at construction time.
type Option func(*client)

// WithSessionExpiredHook registers fn to be called whenever a token refresh
// fails and the session is terminated.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *client) { c.onSessionExpired = fn }
}

// NewClient constructs an HTTP [AdminAPI] from the client adapter config.
// It normalises and validates the base URL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewClient(cfg config.ClientAdapter, tokens token.Store, logger *logger.Logger, opts ...Option) (AdminAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c := &client{http: httpClient, tokens: tokens, logger: logger}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsAuthenticated implements [AdminAPI].
func (c *client) IsAuthenticated() bool {
	return c.tokens.AccessToken() != ""
}

// Login implements [AdminAPI]. On success both tokens are persisted before
// the admin record is returned.
func (c *client) Login(ctx context.Context, email, password string) (models.Admin, error) {
	var out models.LoginResponse

	if err := c.do(ctx, http.MethodPost, epLogin, models.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return models.Admin{}, err
	}

	if err := c.tokens.SetAccessToken(out.Token); err != nil {
		return models.Admin{}, fmt.Errorf("persist access token: %w", err)
	}
	if out.RefreshToken != "" {
		if err := c.tokens.SetRefreshToken(out.RefreshToken); err != nil {
			return models.Admin{}, fmt.Errorf("persist refresh token: %w", err)
		}
	}

	return out.User, nil
}

// Logout implements [AdminAPI]. The server call is best effort: local tokens
// are cleared even when it fails.
func (c *client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, epLogout, nil, nil)
	if clearErr := c.tokens.Clear(); clearErr != nil {
		return fmt.Errorf("clear tokens: %w", clearErr)
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("server logout failed, local session cleared")
	}

	return nil
}

// CurrentUser implements [AdminAPI].
func (c *client) CurrentUser(ctx context.Context) (models.Admin, error) {
	var out models.Admin
	if err := c.do(ctx, http.MethodGet, epMe, nil, &out); err != nil {
		return models.Admin{}, err
	}
	return out, nil
}

// do dispatches one request with the stored access token attached. On a 401
// for a request not yet retried it suspends the request, runs the coalesced
// refresh flow, and retries exactly once with the new token. A retried
// request that fails again with 401 surfaces [ErrAuthentication] without a
// second refresh.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body, out, c.tokens.AccessToken())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return mapHTTPError(resp)
	}

	if c.tokens.RefreshToken() == "" {
		// nothing to refresh with: the session, if any, is over
		c.expireSession()
		return fmt.Errorf("%w: %s", ErrAuthentication, serverMessage(resp))
	}

	newToken, err := c.refresh(ctx)
	if err != nil {
		return err
	}

	resp, err = c.send(ctx, method, path, body, out, newToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrAuthentication, serverMessage(resp))
	}

	return mapHTTPError(resp)
}

func (c *client) send(ctx context.Context, method, path string, body, out any, accessToken string) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)

	if accessToken != "" {
		req.SetHeader("Authorization", "Bearer "+accessToken)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	return req.Execute(method, path)
}

// get is a typed convenience wrapper over do for GET endpoints.
func (c *client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}
