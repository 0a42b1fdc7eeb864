// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

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
  - DI-Friendly: Passed to core components (store, repository) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/meibo-app/meibo/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Meibo record store.
type Config struct {

	// General settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Backing file location
	DataDir  string `env:"MEIBO_DATA_DIR"  envDefault:"./data"`
	FileName string `env:"MEIBO_FILE_NAME" envDefault:"roster.csv"`

	// MaxRecords is the capacity ceiling; reads exceeding it are flagged,
	// never truncated.
	MaxRecords int `env:"MEIBO_MAX_RECORDS" envDefault:"1000"`

	// Validation bounds for date fields (inclusive lower bound; upper bound
	// is always "today").
	MinBirthDate string `env:"MEIBO_MIN_BIRTH_DATE" envDefault:"1935-01-01"`
	MinJoinDate  string `env:"MEIBO_MIN_JOIN_DATE"  envDefault:"1970-01-01"`

	// StrictText controls free-text handling of emoji and format-control
	// characters: reject the value when true, silently strip them when false.
	StrictText bool `env:"MEIBO_STRICT_TEXT" envDefault:"false"`
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

	// Date bounds must parse at startup so validators never see garbage.
	if _, err := time.Parse(constants.DateLayout, cfg.MinBirthDate); err != nil {
		return nil, fmt.Errorf("config: MEIBO_MIN_BIRTH_DATE must be YYYY-MM-DD: %w", err)
	}
	if _, err := time.Parse(constants.DateLayout, cfg.MinJoinDate); err != nil {
		return nil, fmt.Errorf("config: MEIBO_MIN_JOIN_DATE must be YYYY-MM-DD: %w", err)
	}

	if cfg.MaxRecords <= 0 {
		return nil, fmt.Errorf("config: MEIBO_MAX_RECORDS must be positive, got %d", cfg.MaxRecords)
	}

	return cfg, nil
}

// MinBirth returns the parsed lower bound for birth dates.
func (c *Config) MinBirth() time.Time {
	t, _ := time.Parse(constants.DateLayout, c.MinBirthDate)
	return t
}

// MinJoin returns the parsed lower bound for join dates.
func (c *Config) MinJoin() time.Time {
	t, _ := time.Parse(constants.DateLayout, c.MinJoinDate)
	return t
}

// IsDevelopment reports whether the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
