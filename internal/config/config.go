package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

const (
	defaultStrategy = "merge"
	defaultTop      = 0

	envWorkers  = "LETTERFREQ_WORKERS"
	envStrategy = "LETTERFREQ_STRATEGY"
	envTop      = "LETTERFREQ_TOP"
	envLogLevel = "LETTERFREQ_LOG_LEVEL"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Workers  int
	Strategy string
	Top      int
	LogLevel slog.Level

	// Warnings lists variables that were set but could not be parsed and
	// were replaced by their defaults.
	Warnings []string
}

// Load reads configuration from environment variables with sensible defaults.
// Workers defaults to the number of CPUs. A parseable but non-positive worker
// count is kept as-is so the engine can reject it.
func Load() Config {
	cfg := Config{
		Workers:  runtime.NumCPU(),
		Strategy: defaultStrategy,
		Top:      defaultTop,
		LogLevel: slog.LevelInfo,
	}

	if v := os.Getenv(envWorkers); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Workers = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s=%q is not an integer, using %d", envWorkers, v, cfg.Workers))
		}
	}
	if v := os.Getenv(envStrategy); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv(envTop); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			cfg.Top = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s=%q is not a non-negative integer, using %d", envTop, v, cfg.Top))
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}

	return cfg
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured JSON logger writing to w at the configured level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
