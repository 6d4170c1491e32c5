package server

import (
	"net/http"
	"testing"

	"github.com/blushrz/salon-admin/internal/config"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoListenAddress)
	assert.Nil(t, srv)
}

func TestShutdown_BeforeRunDoesNotPanic(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.NoError(t, err)

	srv.Shutdown()
}
