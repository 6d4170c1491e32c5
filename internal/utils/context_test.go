package utils

import (
	"context"
	"testing"

	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdminFromContext(t *testing.T) {
	admin := models.Admin{ID: "admin-1", Email: "admin@blushrz.com", Role: models.RoleSuperAdmin}
	ctx := context.WithValue(context.Background(), AdminCtxKey, admin)

	got, ok := GetAdminFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, admin, got)
}

func TestGetAdminFromContext_Missing(t *testing.T) {
	_, ok := GetAdminFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetAdminFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminCtxKey, "admin-1")

	_, ok := GetAdminFromContext(ctx)
	assert.False(t, ok)
}
