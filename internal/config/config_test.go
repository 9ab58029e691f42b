package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "http_port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "http_port"},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -1 }, "shutdown_timeout"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"threshold above one", func(c *Config) { c.Resolver.Threshold = 1.5 }, "threshold"},
		{"negative threshold", func(c *Config) { c.Resolver.Threshold = -0.1 }, "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestResolverConfigIdentity(t *testing.T) {
	rc := ResolverConfig{
		Threshold: 0.7,
		Nicknames: map[string][]string{"peg": {"margaret"}},
	}

	ic := rc.Identity()
	assert.InDelta(t, 0.7, ic.Threshold, 1e-9)
	assert.Equal(t, rc.Nicknames, ic.Nicknames)
}
