package auth

import "errors"

var (
	// ErrNotAuthenticated means no admin is logged in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied means the logged-in admin lacks the required
	// permission.
	ErrPermissionDenied = errors.New("permission denied")
)
