// Package config loads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigError is a custom error type for invalid settings
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrEmptyRedisAddr ConfigError = "redis address cannot be empty"
	ErrBadLogFormat   ConfigError = "log format must be text or json"
	ErrBadDecayAfter  ConfigError = "decay inactivity window must be positive"
	ErrBadDecayAmount ConfigError = "decay amount must be positive"
)

// Config holds every setting of the league process
type Config struct {
	// Redis connection
	RedisAddr     string `env:"EWAR_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"EWAR_REDIS_PASSWORD"`
	RedisDB       int    `env:"EWAR_REDIS_DB" envDefault:"0"`

	// Namespace prefixes every key so several leagues can share one Redis
	Namespace string `env:"EWAR_NAMESPACE" envDefault:"ewar"`

	LogLevel  string `env:"EWAR_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"EWAR_LOG_FORMAT" envDefault:"text"`

	// Inactivity decay
	DecaySchedule string        `env:"EWAR_DECAY_SCHEDULE" envDefault:"0 0 * * *"`
	DecayAfter    time.Duration `env:"EWAR_DECAY_AFTER" envDefault:"168h"`
	DecayAmount   float64       `env:"EWAR_DECAY_AMOUNT" envDefault:"0.1"`

	// MetricsAddr is where serve exposes /metrics, empty disables it
	MetricsAddr string `env:"EWAR_METRICS_ADDR" envDefault:":9090"`

	// Moderators are the league ids allowed to decide events
	Moderators []int32 `env:"EWAR_LEAGUE_MODERATORS" envSeparator:","`
}

// Load reads the given .env files, or ./.env when none are named, and then
// parses the environment. Missing files are ignored. Variables already set
// in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that have no usable fallback
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return ErrEmptyRedisAddr
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return ErrBadLogFormat
	}

	if c.DecayAfter <= 0 {
		return ErrBadDecayAfter
	}

	if c.DecayAmount <= 0 {
		return ErrBadDecayAmount
	}

	return nil
}

// ModeratorIDs returns the configured moderators as league ids
func (c *Config) ModeratorIDs() []models.PlayerID {
	ids := make([]models.PlayerID, len(c.Moderators))
	for i, id := range c.Moderators {
		ids[i] = models.PlayerID(id)
	}
	return ids
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
