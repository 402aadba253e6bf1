// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the labyrinth executables from
// the environment, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generate"
)

// ErrInvalid reports a malformed or out-of-range setting.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the runtime settings.
type Config struct {
	Width        int                // Default maze width (LABYRINTH_WIDTH)
	Height       int                // Default maze height (LABYRINTH_HEIGHT)
	Algorithm    generate.Algorithm // Default generator (LABYRINTH_ALGORITHM)
	Seed         int64              // Fixed seed, 0 means time based (LABYRINTH_SEED)
	LogLevel     logrus.Level       // Log verbosity (LABYRINTH_LOG_LEVEL)
	MaxDimension int                // Largest width or height served (LABYRINTH_MAX_DIMENSION)
	Host         string             // Listen host (LABYRINTH_HOST)
	Port         int                // Listen port (LABYRINTH_PORT)
	GinMode      string             // Gin mode: release, debug or test (GIN_MODE)
	TraceDelay   time.Duration      // Pause between traced steps (LABYRINTH_TRACE_DELAY)
}

// Load reads files into the environment without overriding variables that
// are already set, then builds a Config. With no files it tries ".env" and
// ignores its absence.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	var (
		c   Config
		err error
	)
	if c.Width, err = getEnvAsInt("LABYRINTH_WIDTH", 25); err != nil {
		return Config{}, err
	}
	if c.Height, err = getEnvAsInt("LABYRINTH_HEIGHT", 25); err != nil {
		return Config{}, err
	}
	if c.Algorithm, err = generate.ParseAlgorithm(getEnvWithDefault("LABYRINTH_ALGORITHM", "dfs")); err != nil {
		return Config{}, fmt.Errorf("%w: LABYRINTH_ALGORITHM: %w", ErrInvalid, err)
	}
	if c.Seed, err = getEnvAsInt64("LABYRINTH_SEED", 0); err != nil {
		return Config{}, err
	}
	if c.LogLevel, err = logrus.ParseLevel(getEnvWithDefault("LABYRINTH_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("%w: LABYRINTH_LOG_LEVEL: %w", ErrInvalid, err)
	}
	if c.MaxDimension, err = getEnvAsInt("LABYRINTH_MAX_DIMENSION", 200); err != nil {
		return Config{}, err
	}
	c.Host = getEnvWithDefault("LABYRINTH_HOST", "0.0.0.0")
	if c.Port, err = getEnvAsInt("LABYRINTH_PORT", 8080); err != nil {
		return Config{}, err
	}
	c.GinMode = getEnvWithDefault("GIN_MODE", "release")
	if c.TraceDelay, err = getEnvAsDuration("LABYRINTH_TRACE_DELAY", 0); err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.MaxDimension <= 0 {
		return fmt.Errorf("%w: LABYRINTH_MAX_DIMENSION=%d", ErrInvalid, c.MaxDimension)
	}
	if err := c.CheckDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: LABYRINTH_PORT=%d", ErrInvalid, c.Port)
	}
	if c.TraceDelay < 0 {
		return fmt.Errorf("%w: LABYRINTH_TRACE_DELAY=%v", ErrInvalid, c.TraceDelay)
	}

	return nil
}

// CheckDimensions reports whether a width×height maze may be built under c.
func (c Config) CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > c.MaxDimension || height > c.MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d outside 1..%d", ErrInvalid, width, height, c.MaxDimension)
	}

	return nil
}

// Addr returns host:port for the HTTP listener.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConfigureLogger applies the configured level to logger.
func (c Config) ConfigureLogger(logger *logrus.Logger) {
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalid, key, err)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalid, key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %w", ErrInvalid, key, err)
	}
	return value, nil
}
