package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerEndpoint)
	assert.Equal(t, "", cfg.MleanEndpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".", cfg.StateDir)
	assert.False(t, cfg.Debug)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("DOCKEEP_SERVER", "https://dms.example.com")
	t.Setenv("DOCKEEP_TIMEOUT", "45s")
	t.Setenv("DOCKEEP_DEBUG", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://dms.example.com", cfg.ServerEndpoint)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Debug)
	// Untouched fields keep their defaults.
	assert.Equal(t, ".", cfg.StateDir)
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	t.Setenv("DOCKEEP_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_Overlays(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"dockeep", "-a", "https://flag.example.com", "-t", "10"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flag.example.com", cfg.ServerEndpoint)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestFlagsTakePrecedenceOverEnv(t *testing.T) {
	t.Setenv("DOCKEEP_SERVER", "https://env.example.com")

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"dockeep", "-a", "https://flag.example.com"}

	cfg := LoadConfig()
	assert.Equal(t, "https://flag.example.com", cfg.ServerEndpoint)
}
