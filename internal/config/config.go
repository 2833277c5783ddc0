// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"SKINOVA_ADDR" envDefault:":8080"`

	// JWTSecret signs issued session tokens. Required.
	JWTSecret string `env:"SKINOVA_JWT_SECRET,required,notEmpty"`

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration `env:"SKINOVA_TOKEN_TTL" envDefault:"24h"`

	// CORSOrigins lists allowed browser origins, comma separated.
	CORSOrigins []string `env:"SKINOVA_CORS_ORIGINS" envDefault:"*"`

	// Environment tags logs and Sentry events (development, production).
	Environment string `env:"SKINOVA_ENV" envDefault:"development"`

	// SentryDSN enables Sentry error reporting when set.
	SentryDSN string `env:"SKINOVA_SENTRY_DSN"`

	// RedisURL enables the Redis-backed credential store in tooling that
	// wants one; the server itself keeps state in memory.
	RedisURL string `env:"SKINOVA_REDIS_URL"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
