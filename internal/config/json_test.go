package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Full(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "jsonkey",
			"token_issuer": "salon-admin",
			"access_token_ttl": "10m",
			"refresh_token_ttl": "168h"
		},
		"server": {"http_address": "localhost:9090", "request_timeout": "45s"},
		"storage": {"dsn": "postgres://localhost/salons", "seed": true},
		"adapter": {
			"base_url": "http://localhost:9090/api",
			"ws_url": "ws://localhost:9090/ws",
			"request_timeout": "20s"
		},
		"client": {"cookie_path": "c.json", "db_path": "t.db"},
		"workers": {"offer_expiry_schedule": "@daily"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "jsonkey", cfg.Auth.TokenSignKey)
	assert.Equal(t, 10*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/salons", cfg.Storage.DSN)
	assert.True(t, cfg.Storage.Seed)
	assert.Equal(t, "http://localhost:9090/api", cfg.Adapter.BaseURL)
	assert.Equal(t, "ws://localhost:9090/ws", cfg.Adapter.WSURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "c.json", cfg.Client.CookiePath)
	assert.Equal(t, "t.db", cfg.Client.DBPath)
	assert.Equal(t, "@daily", cfg.Workers.OfferExpirySchedule)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string duration", `"1h30m"`, 90 * time.Minute, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"eleventy"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
