package config

import "time"

// Fixed defaults from the original dashboard: 30 s request timeout on HTTP
// calls, 10 s on the real-time handshake (owned by the realtime package).
const (
	defaultRequestTimeout  = 30 * time.Second
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 720 * time.Hour
	defaultOfferExpiry     = "@hourly"
)

// applyDefaults fills zero-valued fields that have a sensible fixed default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Workers.OfferExpirySchedule == "" {
		cfg.Workers.OfferExpirySchedule = defaultOfferExpiry
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at server startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress != "" && cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Tokens.CookiePath == "" || cfg.Tokens.DBPath == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
