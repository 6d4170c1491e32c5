package service

import "errors"

var (
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a presented token cannot be parsed,
	// is expired, or is of the wrong kind.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation is returned when a request carries invalid data. The
	// wrapping error text names the offending field.
	ErrValidation = errors.New("invalid data")
)
