// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. For local development,
'.env.local' and '.env' files in the working directory are loaded first with
'joho/godotenv'; variables already present in the process environment win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (MongoDB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFiles are loaded in order; earlier files take precedence.
var dotenvFiles = []string{".env.local", ".env"}

// # Configuration Schema

// Config holds all runtime configuration for the catalog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"PORT"         envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document Database (MongoDB)
	MongoURL        string `env:"MONGO_URL"        envDefault:"mongodb://localhost/project-mongo"`
	MongoDatabase   string `env:"MONGO_DATABASE"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"books"`

	// Seeding. Any non-empty RESET_DB value triggers a reset-and-reload at startup.
	ResetDB  string `env:"RESET_DB"`
	SeedFile string `env:"SEED_FILE"`

	// Optional lookup cache (Redis). Disabled when RedisURL is empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// # Configuration Loading

// Load reads optional dotenv files, then parses environment variables into a [Config].
func Load() (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}

	return Parse(env.Options{})
}

// Parse maps environment variables into a [Config] using the given options.
// Tests pass [env.Options.Environment] to avoid touching the process environment.
func Parse(options env.Options) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, options); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("config: CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}

	return cfg, nil
}

// ShouldSeed reports whether the seed flag is set.
func (c *Config) ShouldSeed() bool {
	return c.ResetDB != ""
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// IsDevelopment reports whether the server is running in development mode.
// Development logs are written as text instead of JSON.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
