// Package config loads the long-lived client configuration: the API
// credential and base endpoint that every operation borrows by reference.
// Configuration can come from a file (JSON, YAML or TOML), from EXAROTON_*
// environment variables, or both, with the environment taking precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "https://api.exaroton.com/v1/"
	defaultTimeout = 30 * time.Second
)

// Config holds the client configuration. Token is the API credential;
// BaseURL the endpoint; Timeout the per-request transport timeout.
type Config struct {
	Token   string        `json:"token" mapstructure:"token"`
	BaseURL string        `json:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// Default returns a configuration pointed at the production endpoint,
// with no credential set.
func Default() *Config {
	return &Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// Load reads configuration from path (optional; pass "" for environment
// only) and applies EXAROTON_TOKEN, EXAROTON_BASE_URL and EXAROTON_TIMEOUT
// overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("token", "")
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("timeout", defaultTimeout)

	v.SetEnvPrefix("EXAROTON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can authenticate a client.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("api token is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	return nil
}
