// Package utils provides small helpers shared across the application:
// type-safe context keys and HTTP response writing.
package utils

import (
	"context"

	"github.com/blushrz/salon-admin/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminCtxKey is the key under which the auth middleware stores the
// authenticated admin in the request context.
var AdminCtxKey = contextKey("admin")

// GetAdminFromContext retrieves the authenticated admin from the context.
//
// Returns the admin and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetAdminFromContext(ctx context.Context) (models.Admin, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(models.Admin)
	return admin, ok
}
