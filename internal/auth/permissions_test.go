package auth

import (
	"testing"

	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	staff := &models.Admin{Role: "staff", Permissions: []string{"bookings.edit"}}

	tests := []struct {
		name       string
		user       *models.Admin
		permission string
		want       bool
	}{
		{"nil user denied", nil, "bookings.view", false},
		{"super admin with empty set", &models.Admin{Role: models.RoleSuperAdmin}, "anything.at.all", true},
		{"member permission allowed", staff, "bookings.edit", true},
		{"missing permission denied", staff, "bookings.delete", false},
		{"no partial matching", staff, "bookings", false},
		{"empty permission set denied", &models.Admin{Role: "staff"}, "bookings.view", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.user, tt.permission))
		})
	}
}
