package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	// zone names resolve even on hosts without zoneinfo
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	Env          string        `yaml:"env"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	LogLevel     string        `yaml:"log_level"`
	Timezone     string        `yaml:"timezone"`
	SeedDemo     bool          `yaml:"seed_demo"`
}

// LoadConfig builds defaults, applies GEARMATE_* environment overrides and
// then the YAML file at path, if any.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("GEARMATE_ADDR", ":8080"),
		Env:          getEnv("GEARMATE_ENV", "development"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("GEARMATE_DATABASE_PATH", "gearmate.db"),
		MaxOpenConns: 1,
		LogLevel:     getEnv("GEARMATE_LOG_LEVEL", "info"),
		Timezone:     getEnv("GEARMATE_TIMEZONE", "UTC"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, errors.New("database_path must not be empty"))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.APITimeout))
	}
	if c.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("max_open_conns must not be negative, got %d", c.MaxOpenConns))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}

	return errors.Join(errs...)
}

// Location returns the time zone used to decide what "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel returns the configured log level, info when unrecognized.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// DSN returns the SQLite connection string: foreign keys enforced, a busy
// timeout, and transactions that take the write lock at BEGIN.
func (c *Config) DSN() string {
	return WithPragmas(c.DatabasePath)
}

// WithPragmas appends the driver options GearMate relies on to a SQLite path or URI.
func WithPragmas(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
