package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the admin API base URL used by the client.
	BaseURL string
	// WSURL is the push-event endpoint URL used by the client.
	WSURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientTokens holds the file locations backing the two token media.
type ClientTokens struct {
	// CookiePath is the short-lived cookie-file medium.
	CookiePath string
	// DBPath is the durable SQLite medium.
	DBPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Tokens contains token storage locations.
	Tokens ClientTokens
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			WSURL:          cfg.Adapter.WSURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Tokens: ClientTokens{
			CookiePath: cfg.Client.CookiePath,
			DBPath:     cfg.Client.DBPath,
		},
	}

	return clientCfg, clientCfg.validate()
}
