// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jahooker/int2en/numwords"
)

type Config struct {
	HTTPAddr     string
	LogLevel     slog.Level
	CacheSize    int
	CacheTTL     time.Duration
	DefaultScale numwords.Scale
}

// Load reads configuration from environment variables, with a .env file as
// fallback when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		CacheTTL: 10 * time.Minute,
	}

	size, err := strconv.Atoi(envOr("CACHE_SIZE", "1024"))
	if err != nil || size < 0 {
		return Config{}, fmt.Errorf("invalid CACHE_SIZE %q", envOr("CACHE_SIZE", "1024"))
	}
	c.CacheSize = size

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		c.CacheTTL = d
	}

	scale, err := parseScale(envOr("DEFAULT_SCALE", "short"))
	if err != nil {
		return Config{}, err
	}
	c.DefaultScale = scale

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseScale(s string) (numwords.Scale, error) {
	switch strings.ToLower(s) {
	case "short":
		return numwords.ShortScale, nil
	case "long":
		return numwords.LongScale, nil
	default:
		return 0, fmt.Errorf("invalid DEFAULT_SCALE %q", s)
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
