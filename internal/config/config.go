package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	UnitPrice           decimal.Decimal
	CompletedVisibleFor time.Duration
	SweepAt             time.Duration
	SweepWindow         time.Duration
	SweepPollInterval   time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultUnitPrice           = "2.50"
	defaultCompletedVisibleFor = 7 * time.Hour
	defaultSweepAt             = 13 * time.Hour
	defaultSweepWindow         = 5 * time.Minute
	defaultSweepPollInterval   = 5 * time.Minute
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		CompletedVisibleFor: getDuration(lookup, "COMPLETED_VISIBLE_FOR", defaultCompletedVisibleFor),
		SweepAt:             getClockTime(lookup, "SWEEP_AT", defaultSweepAt),
		SweepWindow:         getDuration(lookup, "SWEEP_WINDOW", defaultSweepWindow),
		SweepPollInterval:   getDuration(lookup, "SWEEP_POLL_INTERVAL", defaultSweepPollInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	unitPriceStr := getString(lookup, "LUNCH_UNIT_PRICE", defaultUnitPrice)

	fs := flag.NewFlagSet("lunchsvc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sweepAtStr         = formatClockTime(cfg.SweepAt)
		visibleForStr      = cfg.CompletedVisibleFor.String()
		pollIntervalStr    = cfg.SweepPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&unitPriceStr, "unit-price", unitPriceStr, "Price of a single lunch portion")
	fs.StringVar(&sweepAtStr, "sweep-at", sweepAtStr, "Local time of day the daily status sweep fires (HH:MM)")
	fs.StringVar(&visibleForStr, "visible-for", visibleForStr, "How long completed orders stay visible in listings")
	fs.StringVar(&pollIntervalStr, "sweep-poll", pollIntervalStr, "Interval between sweep polling checks")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.UnitPrice, err = decimal.NewFromString(unitPriceStr); err != nil {
		return nil, fmt.Errorf("invalid unit price: %w", err)
	}

	if cfg.SweepAt, err = parseClockTime(sweepAtStr); err != nil {
		return nil, fmt.Errorf("invalid sweep time: %w", err)
	}

	if cfg.CompletedVisibleFor, err = time.ParseDuration(visibleForStr); err != nil {
		return nil, fmt.Errorf("invalid visibility window: %w", err)
	}

	if cfg.SweepPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if !cfg.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("unit price must be positive")
	}

	if cfg.CompletedVisibleFor <= 0 {
		cfg.CompletedVisibleFor = defaultCompletedVisibleFor
	}

	if cfg.SweepWindow <= 0 {
		cfg.SweepWindow = defaultSweepWindow
	}

	if cfg.SweepPollInterval <= 0 {
		cfg.SweepPollInterval = defaultSweepPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getClockTime(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := parseClockTime(v); err == nil {
			return d
		}
	}
	return def
}

// parseClockTime reads an HH:MM time of day as an offset from midnight.
func parseClockTime(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClockTime(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
