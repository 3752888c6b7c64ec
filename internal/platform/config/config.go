// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles environment parsing for the OpenJam client and the
local mock backend.

It leverages 'caarlos0/env' to map OS environment variables into strongly
typed Go structs, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the client and its transports via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Client Configuration

// Config holds the runtime configuration of the OpenJam client.
type Config struct {

	// Remote content API
	APIURL      string        `env:"OPENJAM_API_URL"      envDefault:"http://localhost:1337"`
	HTTPTimeout time.Duration `env:"OPENJAM_HTTP_TIMEOUT" envDefault:"10s"`

	// Client-side throttling of outgoing requests
	RateLimitRPS   float64 `env:"OPENJAM_RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"OPENJAM_RATE_LIMIT_BURST" envDefault:"40"`

	// List cache. An empty RedisURL selects the in-memory cache.
	CacheTTL time.Duration `env:"OPENJAM_CACHE_TTL" envDefault:"5m"`
	RedisURL string        `env:"REDIS_URL"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// # Mock Backend Configuration

// ServerConfig holds the configuration of the local mock backend.
type ServerConfig struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT" envDefault:"1337"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Document store. An empty DatabaseURL selects the in-memory store.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

// # Configuration Loading

// Load parses the client environment variables into a [Config].
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadServer parses the mock backend environment variables into a [ServerConfig].
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Default returns the client configuration with every default applied and
// no environment lookup. Useful for tests and embedding.
func Default() *Config {
	cfg := &Config{}
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

func (c *Config) check() error {
	if c.APIURL == "" {
		return fmt.Errorf("config: OPENJAM_API_URL must not be empty")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit must be positive (rps=%g burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// UsesRedis reports whether the list cache is backed by Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

// IsDevelopment reports whether the mock backend runs in development mode.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesPostgres reports whether documents are stored in PostgreSQL.
func (c *ServerConfig) UsesPostgres() bool {
	return c.DatabaseURL != ""
}
