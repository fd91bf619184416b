// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (dataset loader, state store) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Storage Drivers

const (
	// DriverFile persists study state as JSON files under StateDir.
	DriverFile = "file"
	// DriverRedis persists study state in Redis.
	DriverRedis = "redis"
	// DriverPostgres persists study state in a PostgreSQL app_state table.
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the ArtStudy API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DatasetURL locates the immutable base record collection, fetched once
	// at startup. Accepts an http(s) URL or a local file path.
	DatasetURL string `env:"DATASET_URL" envDefault:"./data/artworks.json"`

	// StorageDriver selects where the override and note maps persist.
	// One of: file, redis, postgres.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`

	// StateDir is the directory for the file storage driver.
	StateDir string `env:"STATE_DIR" envDefault:"./data/state"`

	// Key-Value store (Redis), required when STORAGE_DRIVER=redis.
	RedisURL string `env:"REDIS_URL"`

	// Relational store (PostgreSQL), required when STORAGE_DRIVER=postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Driver-specific required settings cannot be expressed with env tags
	// alone, so they are checked here.
	switch cfg.StorageDriver {
	case DriverFile:
		if cfg.StateDir == "" {
			return nil, fmt.Errorf("config: STATE_DIR is required for the file storage driver")
		}
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("config: REDIS_URL is required for the redis storage driver")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required for the postgres storage driver")
		}
	default:
		return nil, fmt.Errorf("config: unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// AllowedOrigins returns the extra CORS origins configured via EXTRA_ORIGINS
// as a trimmed, comma-split list.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
