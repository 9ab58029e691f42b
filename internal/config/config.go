// Package config provides configuration loading for taskd.
//
// Configuration is loaded from a YAML file and overridden by environment
// variables. Every value has a sensible default, so an empty config is
// fully usable.
package config

import (
	"fmt"
	"time"

	"github.com/fyrsmithlabs/taskd/pkg/extract"
	"github.com/fyrsmithlabs/taskd/pkg/identity"
)

// Config holds the complete taskd configuration.
type Config struct {
	Server     ServerConfig   `koanf:"server"`
	Logging    LoggingConfig  `koanf:"logging"`
	Extraction extract.Config `koanf:"extraction"`
	Resolver   ResolverConfig `koanf:"resolver"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"http_port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logger construction settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ResolverConfig holds identity resolver configuration plus the roster
// location the server loads at startup.
type ResolverConfig struct {
	Threshold  float64             `koanf:"threshold"`
	Nicknames  map[string][]string `koanf:"nicknames"`
	RosterPath string              `koanf:"roster_path"`
}

// Identity converts the section into the resolver package's config.
func (r ResolverConfig) Identity() identity.Config {
	return identity.Config{
		Threshold: r.Threshold,
		Nicknames: r.Nicknames,
	}
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9180
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Resolver.Threshold == 0 {
		cfg.Resolver.Threshold = identity.DefaultThreshold
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout cannot be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if c.Resolver.Threshold < 0 || c.Resolver.Threshold > 1 {
		return fmt.Errorf("resolver.threshold must be within [0, 1], got %v", c.Resolver.Threshold)
	}
	return nil
}
