// Package token implements the client-side token store: access and refresh
// tokens are written redundantly to two independent storage media so that
// clearing one does not silently break authentication.
//
// The short-lived medium is a cookie file with per-entry expiry; the durable
// medium is a local SQLite database. Reads prefer the cookie medium and fall
// back to the durable one. Tokens are opaque strings; no encryption or
// integrity check is applied.
package token

import "time"

// Storage keys under which the two tokens are persisted in every medium.
const (
	AccessTokenKey  = "admin_token"
	RefreshTokenKey = "admin_refresh_token"
)

// Cookie-medium lifetimes, matching the original dashboard cookies.
const (
	AccessTokenTTL  = 7 * 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Store is the token persistence contract used by the HTTP client wrapper
// and the real-time client.
type Store interface {
	// SetAccessToken persists the access token in both media.
	SetAccessToken(token string) error

	// SetRefreshToken persists the refresh token in both media.
	SetRefreshToken(token string) error

	// AccessToken returns the stored access token, or an empty string if
	// none is present in either medium.
	AccessToken() string

	// RefreshToken returns the stored refresh token, or an empty string if
	// none is present in either medium.
	RefreshToken() string

	// Clear removes both tokens from both media. It keeps going on partial
	// failure and reports the joined error.
	Clear() error
}

// Medium is a single key-value storage backend. Implementations must be safe
// for concurrent use.
type Medium interface {
	// Set stores value under key. A positive ttl marks the entry as expired
	// after that duration; zero means no expiry.
	Set(key, value string, ttl time.Duration) error

	// Get returns the value stored under key, or [ErrTokenNotFound] if the
	// key is absent or expired.
	Get(key string) (string, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the medium.
	Close() error
}
