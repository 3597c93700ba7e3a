// Package config holds runtime settings for the dockeep console and the
// layered loading logic: defaults, then YAML config file, then environment,
// then command-line flags. Later sources take precedence.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the dockeep console.
//
// Fields:
//   - ServerEndpoint: base URL of the document-management backend.
//   - MleanEndpoint: base URL of the external perimeter classification
//     service; empty disables the secondary sync.
//   - RequestTimeout: client-side bound on every HTTP request, so a hung
//     request can never leave an upload stuck in flight.
//   - StateDir: directory for the local state database and key file.
//   - Debug: enables debug-level logging.
type Config struct {
	ServerEndpoint string
	MleanEndpoint  string
	RequestTimeout time.Duration
	StateDir       string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpoint = "http://127.0.0.1:8000"
	c.MleanEndpoint = ""
	c.RequestTimeout = 30 * time.Second
	c.StateDir = "."
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from YAML (if a config file was given), environment variables, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseYAML(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
