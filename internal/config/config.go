// Package config loads PrepDeck settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBackendURL matches the generation service's local default.
const DefaultBackendURL = "http://localhost:5000"

// DefaultTimeout bounds a single backend request.
const DefaultTimeout = 60 * time.Second

// Config holds all client configuration.
type Config struct {
	Backend struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"backend"`
}

// Default returns a Config pointing at the local backend.
func Default() Config {
	var cfg Config
	cfg.Backend.URL = DefaultBackendURL
	cfg.Backend.Timeout = DefaultTimeout.String()
	return cfg
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/prepdeck/config.yaml or ~/.config/prepdeck/config.yaml.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "prepdeck", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "prepdeck", "config.yaml"), nil
}

// Load reads the config file at path, then applies PREPDECK_* env overrides.
// A missing file is not an error: defaults plus env apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fine, defaults apply
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Backend.URL == "" {
		cfg.Backend.URL = DefaultBackendURL
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if u := os.Getenv("PREPDECK_BACKEND_URL"); u != "" {
		cfg.Backend.URL = u
	}
	if d := os.Getenv("PREPDECK_BACKEND_TIMEOUT"); d != "" {
		cfg.Backend.Timeout = d
	}
}

func (c Config) validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend url %q", c.Backend.URL)
	}
	return nil
}

// Timeout parses the configured timeout, falling back to DefaultTimeout on
// an empty or unparseable value.
func (c Config) Timeout() time.Duration {
	if c.Backend.Timeout == "" {
		return DefaultTimeout
	}
	if d, err := time.ParseDuration(c.Backend.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultTimeout
}
