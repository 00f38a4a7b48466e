/*
PURPOSE:
  Defines the configuration structure and loading logic for hevy-metrics.

REQUIREMENTS:
  User-specified:
  - API key from the environment (HEVY_API_KEY), optionally via a .env file.
  - Output files live under a local working-directory subfolder.
  - Timestamps render in a fixed timezone.

  Implementation-discovered:
  - Needs YAML parsing for optional settings files.
  - Needs environment variable overrides (HEVY_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/joho/godotenv

ERROR HANDLING:
  - Returns explicit error if a named config file is missing or invalid.
  - Missing default config files and a missing .env are not errors.
  - A missing API key is NOT checked here; engine.New reports it as
    ErrMissingCredential so both commands fail the same way.

USAGE:
  cfg, err := config.Load("")
  if err := cfg.Validate(); err != nil { ... }

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // fixed-zone rendering must not depend on the host zoneinfo

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load.
const (
	EnvAPIKey    = "HEVY_API_KEY"
	EnvBaseURL   = "HEVY_BASE_URL"
	EnvOutputDir = "HEVY_METRICS_DIR"
	EnvTimezone  = "HEVY_TIMEZONE"
	EnvTimeout   = "HEVY_TIMEOUT"
)

// MaxPageSize is the largest page the workouts endpoint accepts.
const MaxPageSize = 10

// Config represents the full configuration for hevy-metrics.
type Config struct {
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	OutputDir    string        `yaml:"output_dir"`
	WorkoutsFile string        `yaml:"workouts_file"`
	CountFile    string        `yaml:"count_file"`
	Timezone     string        `yaml:"timezone"`
	Timeout      time.Duration `yaml:"timeout"`
	// RecentPageSize is how many workouts `recent` lists.
	RecentPageSize int `yaml:"recent_page_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://api.hevyapp.com",
		OutputDir:      ".metrics",
		WorkoutsFile:   "workouts_data.txt",
		CountFile:      "workouts_count.txt",
		Timezone:       "America/Lima",
		Timeout:        30 * time.Second,
		RecentPageSize: 5,
	}
}

// Load reads configuration from a file, then applies .env and environment overrides.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, the defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		for _, name := range []string{"hevy_metrics.yaml", "hevy-metrics.yaml", ".hevy-metrics.yaml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// godotenv never overwrites variables already present in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.WorkoutsFile == "" || c.CountFile == "" {
		return fmt.Errorf("workouts_file and count_file are required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.RecentPageSize < 1 || c.RecentPageSize > MaxPageSize {
		return fmt.Errorf("recent_page_size must be between 1 and %d, got %d", MaxPageSize, c.RecentPageSize)
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// WorkoutsPath is the append-only workout log.
func (c *Config) WorkoutsPath() string {
	return filepath.Join(c.OutputDir, c.WorkoutsFile)
}

// CountPath is the overwrite-only count snapshot.
func (c *Config) CountPath() string {
	return filepath.Join(c.OutputDir, c.CountFile)
}
