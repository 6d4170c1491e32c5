package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	bootstrapAdminEmail    = "admin@blushrz.com"
	bootstrapAdminPassword = "admin123"
)

// SeedDefaultAdmin creates the bootstrap super admin when no account with
// its email exists yet. A freshly migrated database is not loginable without
// it. The password must be rotated after first login.
func SeedDefaultAdmin(ctx context.Context, admins AdminRepository, log *logger.Logger) error {
	_, err := admins.GetByEmail(ctx, bootstrapAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("checking for bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing bootstrap password: %w", err)
	}

	admin := models.Admin{
		ID:           "admin-1",
		Name:         "Platform Admin",
		Email:        bootstrapAdminEmail,
		Role:         models.RoleSuperAdmin,
		PasswordHash: string(hash),
	}
	if _, err = admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating bootstrap admin: %w", err)
	}

	log.Warn().Str("email", bootstrapAdminEmail).Msg("bootstrap admin created with the default password")
	return nil
}
