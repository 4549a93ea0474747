package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ModulesPath is a directory of .hcl manifests replacing the builtin
	// ones. Empty means the embedded manifests.
	ModulesPath string

	LogFormat string
	LogLevel  string

	// Locale is a BCP 47 tag selecting display strings.
	Locale string
	// Timezone is an IANA name used by the date functions; "Local" or empty
	// means the system zone.
	Timezone string

	Port         int
	OTLPEndpoint string
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, errors.New("invalid log-format: must be 'text' or 'json'"))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}

	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		errs = append(errs, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err))
	}

	if _, err := cfg.Location(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 0 and 65535", cfg.Port))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
