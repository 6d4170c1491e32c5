// Package app contains shared application-layer constants used across the
// admin API handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidToken is returned when a bearer token is missing a valid
	// signature, carries the wrong kind, or has expired.
	MsgInvalidToken = "invalid or expired token"

	// MsgMissingDateParam is returned when a date-scoped endpoint is called
	// without its required "date" query parameter.
	MsgMissingDateParam = "missing `date` query parameter"

	// MsgInvalidDateParam is returned when the "date" query parameter does
	// not parse as YYYY-MM-DD.
	MsgInvalidDateParam = "invalid `date` query parameter, want YYYY-MM-DD"
)
