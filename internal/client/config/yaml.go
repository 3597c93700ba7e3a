package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nmatveev/dockeep/internal/flagx"
)

// yamlConfig is a DTO used exclusively for YAML unmarshalling. Durations
// are given as strings like "30s". Zero values mean "not set" and leave
// the current Config value alone.
type yamlConfig struct {
	ServerEndpoint string `yaml:"server_endpoint"`
	MleanEndpoint  string `yaml:"mlean_endpoint"`
	RequestTimeout string `yaml:"request_timeout"`
	StateDir       string `yaml:"state_dir"`
	Debug          *bool  `yaml:"debug"`
}

// parseYAML overlays Config with values loaded from a YAML file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read and parse errors panic: a config file that was explicitly pointed
// at must be usable.
func parseYAML(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		panic(err)
	}

	if yc.ServerEndpoint != "" {
		cfg.ServerEndpoint = yc.ServerEndpoint
	}
	if yc.MleanEndpoint != "" {
		cfg.MleanEndpoint = yc.MleanEndpoint
	}
	if yc.RequestTimeout != "" {
		d, err := time.ParseDuration(yc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if yc.StateDir != "" {
		cfg.StateDir = yc.StateDir
	}
	if yc.Debug != nil {
		cfg.Debug = *yc.Debug
	}
}
