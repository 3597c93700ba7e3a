package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from environment variables. The
// process environment may already include a .env file loaded by main.
//
// Variables:
//
//	DOCKEEP_SERVER      backend base URL
//	DOCKEEP_MLEAN       mLean base URL
//	DOCKEEP_TIMEOUT     request timeout, e.g. "45s"
//	DOCKEEP_STATE_DIR   local state directory
//	DOCKEEP_DEBUG       "true" enables debug logging
func parseEnv(cfg *Config) {
	cfg.ServerEndpoint = getEnv("DOCKEEP_SERVER", cfg.ServerEndpoint)
	cfg.MleanEndpoint = getEnv("DOCKEEP_MLEAN", cfg.MleanEndpoint)
	cfg.StateDir = getEnv("DOCKEEP_STATE_DIR", cfg.StateDir)

	if v := os.Getenv("DOCKEEP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("DOCKEEP_DEBUG"); v != "" {
		cfg.Debug = v == "true"
	}
}
