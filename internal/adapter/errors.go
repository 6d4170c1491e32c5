package adapter

import "errors"

// Sentinel errors forming the client error taxonomy. Every non-2xx response
// and every transport failure is mapped to exactly one of these; callers
// match with [errors.Is]. The server-provided message, when available, is
// carried in the wrapping error text.
var (
	// ErrAuthentication covers 401 after the one-shot retry and any refresh
	// failure. The session is dead: tokens have been cleared.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization covers 403.
	ErrAuthorization = errors.New("access denied")

	// ErrNotFound covers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict covers 409.
	ErrConflict = errors.New("conflict occurred")

	// ErrValidation covers 422.
	ErrValidation = errors.New("invalid data provided")

	// ErrServer covers all 5xx responses.
	ErrServer = errors.New("server error")

	// ErrNetwork covers requests for which no response was received.
	ErrNetwork = errors.New("network error")

	// ErrUnknown covers any other non-2xx status.
	ErrUnknown = errors.New("unexpected error")
)
