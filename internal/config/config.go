// Package config loads runtime settings from the environment.
//
// The fallback values are development conveniences: in particular the
// default JWT secret is public knowledge and must be overridden in any
// deployment that matters.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the drydock server
type Config struct {
	// Addr is the listen address
	Addr string `env:"DRYDOCK_ADDR" envDefault:":3000"`

	// JWTSecret is the HMAC key for signing tokens (HS256).
	// The default is insecure by definition; override it outside development.
	JWTSecret string `env:"DRYDOCK_JWT_SECRET" envDefault:"secret"`

	// TokenTTL bounds token validity. Zero (the default) mints tokens
	// without an expiry claim.
	TokenTTL time.Duration `env:"DRYDOCK_TOKEN_TTL"`

	// Storage selects the storage backend ("memory" or "redis")
	Storage string `env:"DRYDOCK_STORAGE" envDefault:"memory"`

	// RedisURL is the Redis connection URL (required when Storage is "redis")
	RedisURL string `env:"DRYDOCK_REDIS_URL"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
