package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL   string `yaml:"base_url"`
	StreamURL string `yaml:"stream_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

const defaultAPIKeyEnv = "MARKET_DATA_API_KEY"

// LoadConfig reads a yaml client config. A missing file is not an error: the
// zero config falls back to defaults so the cmds work with nothing but an
// API key in the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.APIKeyEnv = defaultAPIKeyEnv
			return &cfg, nil
		}

		return nil, fmt.Errorf("LoadConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadConfig: failed to parse %s: %w", path, err)
	}

	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = defaultAPIKeyEnv
	}

	return &cfg, nil
}

// APIKey resolves the key from the configured environment variable.
func (c *Config) APIKey() (string, error) {
	key := os.Getenv(c.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("Config.APIKey: missing %s environment variable", c.APIKeyEnv)
	}

	return key, nil
}
