// Package auth implements the client-side session manager and the flat
// authorization gate shared by the dashboard and the admin API handlers.
package auth

import (
	"slices"

	"github.com/blushrz/salon-admin/models"
)

// HasPermission reports whether user may perform the named action. It is a
// flat membership test: the permission set is checked verbatim, with a
// designated super role bypassing the check unconditionally. A nil user is
// always denied.
func HasPermission(user *models.Admin, permission string) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleSuperAdmin {
		return true
	}

	return slices.Contains(user.Permissions, permission)
}
