// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"EVENTDECK_DB_PATH" envDefault:"./data/eventdeck.db"`
	ServerHost string `env:"EVENTDECK_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"EVENTDECK_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"EVENTDECK_ENV" envDefault:"development"`
	LogLevel   string `env:"EVENTDECK_LOG_LEVEL" envDefault:"info"`

	// Origin of the dashboard frontend, allowed by CORS with credentials.
	FrontendOrigin string `env:"EVENTDECK_FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`

	// Cache configuration
	RedisURL    string `env:"EVENTDECK_REDIS_URL"`                        // Optional Redis URL for caching
	CachePrefix string `env:"EVENTDECK_CACHE_PREFIX" envDefault:"edeck:"` // Redis key prefix
	CacheTTL    int    `env:"EVENTDECK_CACHE_TTL" envDefault:"3600"`      // Default cache TTL in seconds

	// Login rate limiting
	LoginRateLimit float64 `env:"EVENTDECK_LOGIN_RATE_LIMIT" envDefault:"1"` // Requests per second per IP
	LoginRateBurst int     `env:"EVENTDECK_LOGIN_RATE_BURST" envDefault:"5"`

	// Audit log retention, in days. Rows older than this are pruned nightly.
	AuditRetentionDays int `env:"EVENTDECK_AUDIT_RETENTION_DAYS" envDefault:"90"`

	// Seeding configuration
	DoSeed bool `env:"EVENTDECK_DO_SEED" envDefault:"false"` // Enable demo data seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.AuditRetentionDays < 1 {
		return nil, fmt.Errorf("EVENTDECK_AUDIT_RETENTION_DAYS must be at least 1, got %d", cfg.AuditRetentionDays)
	}

	return cfg, nil
}
