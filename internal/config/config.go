package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all pydock configuration. It is scoped to a store root
// and loaded once per invocation via Load().
type Config struct {
	// Docker contains container engine settings
	Docker DockerConfig `yaml:"docker"`

	// Environment contains defaults baked into new environments
	Environment EnvironmentConfig `yaml:"environment"`
}

// DockerConfig controls how the container engine is invoked.
type DockerConfig struct {
	// Repository is an optional registry prefix for python base images
	// (e.g., "myregistry.example.com/"). Empty means Docker Hub.
	Repository string `yaml:"repository"`

	// Sudo prefixes every engine invocation with sudo
	Sudo bool `yaml:"sudo"`

	// Runtime selects the engine binary: "auto", "docker" or "podman".
	// "auto" probes for an available one at startup.
	Runtime string `yaml:"runtime"`
}

// EnvironmentConfig holds per-environment defaults.
type EnvironmentConfig struct {
	// Username is the non-root user created inside every image
	Username string `yaml:"username"`

	// Shell is the command line started by `pydock shell`,
	// parsed with shell word splitting
	Shell string `yaml:"shell"`
}

// Load reads configuration from the given path. Defaults are applied
// first, then file values, then PYDOCK_* environment overrides, then
// validation. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Save writes the fully resolved configuration to the given path.
// Called on first use of a store so the file documents every setting.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
