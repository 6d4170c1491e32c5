package store

import (
	"context"
	"testing"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultAdmin_NoOpWhenPresent(t *testing.T) {
	repos := NewMemoryRepositories(logger.Nop())
	ctx := context.Background()

	require.NoError(t, SeedDefaultAdmin(ctx, repos.Admins, logger.Nop()))

	// the seeded account is untouched
	admin, err := repos.Admins.GetByEmail(ctx, "admin@blushrz.com")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)
}

func TestAdmins_CreateRejectsDuplicateEmail(t *testing.T) {
	repos := NewMemoryRepositories(logger.Nop())

	_, err := repos.Admins.Create(context.Background(), models.Admin{
		Name: "Clone", Email: "ADMIN@blushrz.com", PasswordHash: "x",
	})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAdmins_CreateAssignsID(t *testing.T) {
	repos := NewMemoryRepositories(logger.Nop())

	created, err := repos.Admins.Create(context.Background(), models.Admin{
		Name: "New Operator", Email: "ops@blushrz.com", PasswordHash: "x",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
