// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads at startup.
type Config struct {
	HTTPPort        int    `env:"HTTP_PORT"        envDefault:"8081"`
	SecureEndpoints bool   `env:"SECURE_ENDPOINTS" envDefault:"true"`
	SecureKey       string `env:"SECURE_KEY"`
	MetricsAddr     string `env:"METRICS_ADDR"     envDefault:":1234"`
	StateBackend    string `env:"STATE_BACKEND"    envDefault:"sqlite"`
	GameStatePath   string `env:"GAMESTATE_PATH"   envDefault:"data/gamestate.db"`
	RandomSeed      int64  `env:"RANDOM_SEED"      envDefault:"0"`
	LogLevel        string `env:"LOG_LEVEL"        envDefault:"info"`
}

// ErrMissingSecureKey is returned when secure endpoints are on without a key.
var ErrMissingSecureKey = errors.New("SECURE_ENDPOINTS is set but SECURE_KEY is empty")

// Load reads the settings and validates them.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads an optional .env file, then the process environment, without
// validating. Variables already set in the environment win over .env.
func Parse() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks settings that depend on each other.
func (c Config) Validate() error {
	if c.SecureEndpoints && c.SecureKey == "" {
		return ErrMissingSecureKey
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return lvl, nil
}
