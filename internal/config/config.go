package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dgallion1/planscheme/internal/vicplan"
)

type Config struct {
	// Planning API
	BaseURL     string
	HTTPTimeout time.Duration

	// Response cache
	CachePath string
	CacheTTL  time.Duration

	// Serve mode
	Port string
}

func Load() Config {
	cfg := Config{
		BaseURL:     envOr("PLANSCHEME_BASE_URL", vicplan.DefaultBaseURL),
		HTTPTimeout: envDuration("PLANSCHEME_HTTP_TIMEOUT", 30*time.Second),

		CachePath: envOr("PLANSCHEME_CACHE", "schemes.db"),
		CacheTTL:  envDuration("PLANSCHEME_CACHE_TTL", 7*24*time.Hour),

		Port: envOr("PORT", "8091"),
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 7 * 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PLANSCHEME_BASE_URL must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
