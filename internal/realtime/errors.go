package realtime

import "errors"

// Connection-layer errors surfaced by [Client.Connect]. Failures after the
// connection is established are logged and reflected in [Client.Status]
// instead of being thrown into subscriber code.
var (
	// ErrNoToken is returned when Connect is called without a stored access
	// token.
	ErrNoToken = errors.New("no access token available")

	// ErrConnectionTimeout is returned when the handshake does not complete
	// within the handshake timeout.
	ErrConnectionTimeout = errors.New("connection timed out")

	// ErrHandshake is returned when the server rejects the authentication
	// handshake.
	ErrHandshake = errors.New("handshake failed")

	// ErrReconnectExhausted marks the error state entered after the bounded
	// reconnect attempts are used up.
	ErrReconnectExhausted = errors.New("reconnect attempts exhausted")
)
