package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/habiliai/ddg-mcp/errors"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "ddg-mcp",
			Version: "0.1.0",
			Host:    "localhost",
			Port:    3001,
		},
		Search: SearchConfig{
			Region:     "wt-wt",
			SafeSearch: "moderate",
			MaxResults: 10,
			ChatModel:  "gpt-4o-mini",
		},
		Log: LogConfig{
			LogLevel:   "info",
			LogHandler: "default",
		},
	}
}

// LoadConfig resolves the process configuration: defaults, then the
// optional YAML file, then environment variables.
func LoadConfig(path string) (*Config, error) {
	conf := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}
		if err := yaml.Unmarshal(raw, conf); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal config file: %s", path)
		}
	}

	conf.Search.applyEnv()
	conf.Log.applyEnv()

	if err := conf.Search.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
