// Package config loads service configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/midgardgame/character-api/internal/errors"
)

// Config holds all configuration values for the service
type Config struct {
	// HTTP
	Port int `env:"PORT" envDefault:"8080"`

	// Character store
	DatabasePath string `env:"DATABASE_PATH" envDefault:"character.db"`

	// Selection store and notification exchange
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// Sibling services
	WardrobeServiceURL string        `env:"WARDROBE_SERVICE_URL" envDefault:"http://localhost:8081"`
	TraitServiceURL    string        `env:"TRAIT_SERVICE_URL" envDefault:"http://localhost:8082"`
	CurrencyServiceURL string        `env:"CURRENCY_SERVICE_URL" envDefault:"http://localhost:8083"`
	RecipeServiceURL   string        `env:"RECIPE_SERVICE_URL" envDefault:"http://localhost:8084"`
	ClientTimeout      time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() (*Config, error) {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	return cfg, nil
}

// SlogLevel maps the configured log level onto a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
