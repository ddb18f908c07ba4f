package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"

	UIModeTUI   = "tui"
	UIModePlain = "plain"
)

type Config struct {
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string        `env:"LOG_FILE"`
	SaveDir      string        `env:"SAVE_DIR" envDefault:"saves"`
	SaveBackend  string        `env:"SAVE_BACKEND" envDefault:"file"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SaveTTL      time.Duration `env:"SAVE_TTL" envDefault:"0s"`
	RandomSeed   int64         `env:"RANDOM_SEED" envDefault:"0"`
	PlayerName   string        `env:"PLAYER_NAME" envDefault:"Kevin"`
	UIMode       string        `env:"UI_MODE" envDefault:"tui"`
	Encounters   bool          `env:"ENCOUNTERS" envDefault:"true"`

	LogLevel slog.Level
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	cfg.SaveBackend = strings.ToLower(strings.TrimSpace(cfg.SaveBackend))
	cfg.UIMode = strings.ToLower(strings.TrimSpace(cfg.UIMode))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.SaveBackend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown SAVE_BACKEND %q (want %s or %s)", c.SaveBackend, BackendFile, BackendRedis)
	}
	switch c.UIMode {
	case UIModeTUI, UIModePlain:
	default:
		return fmt.Errorf("unknown UI_MODE %q (want %s or %s)", c.UIMode, UIModeTUI, UIModePlain)
	}
	if c.SaveTTL < 0 {
		return fmt.Errorf("SAVE_TTL must not be negative, got %s", c.SaveTTL)
	}
	if c.SaveBackend == BackendFile && c.SaveDir == "" {
		return fmt.Errorf("SAVE_DIR is required for the file backend")
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
