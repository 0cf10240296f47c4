// Package config provides environment-driven configuration for the catalog API.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Configuration validation errors.
var (
	ErrInvalidMaxPageSize     = errors.New("MAX_PAGE_SIZE must be at least 1")
	ErrInvalidDefaultPageSize = errors.New("DEFAULT_PAGE_SIZE must be at least 1")
	ErrDefaultExceedsMax      = errors.New("DEFAULT_PAGE_SIZE cannot exceed MAX_PAGE_SIZE")
	ErrInvalidRateLimitRPS    = errors.New("RATE_LIMIT_RPS must be positive")
	ErrInvalidRateLimitBurst  = errors.New("RATE_LIMIT_BURST must be at least 1")
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr            string
	CatalogDir      string
	CORSOrigins     []string
	DefaultPageSize int
	MaxPageSize     int
	RateLimitRPS    float64
	RateLimitBurst  int
}

// FromEnv reads configuration from the environment, applying defaults for
// anything unset, and validates the result.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		CatalogDir:      getEnv("CATALOG_DIR", "yaml_files"),
		CORSOrigins:     splitOrigins(getEnv("CORS_ORIGINS", "*")),
		DefaultPageSize: 50,
		MaxPageSize:     200,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
	}

	var err error
	if cfg.DefaultPageSize, err = getEnvInt("DEFAULT_PAGE_SIZE", cfg.DefaultPageSize); err != nil {
		return nil, err
	}
	if cfg.MaxPageSize, err = getEnvInt("MAX_PAGE_SIZE", cfg.MaxPageSize); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_RPS is not a number: %w", err)
		}
		cfg.RateLimitRPS = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the internal consistency of the configuration.
func (c *Config) Validate() error {
	if c.MaxPageSize < 1 {
		return ErrInvalidMaxPageSize
	}
	if c.DefaultPageSize < 1 {
		return ErrInvalidDefaultPageSize
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return ErrDefaultExceedsMax
	}
	if c.RateLimitRPS <= 0 {
		return ErrInvalidRateLimitRPS
	}
	if c.RateLimitBurst < 1 {
		return ErrInvalidRateLimitBurst
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer: %w", key, err)
	}
	return v, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
