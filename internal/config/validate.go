package config

import "fmt"

// validate checks config invariants after defaults, file values and
// environment overrides have been merged.
func validate(cfg *Config) error {
	switch cfg.Docker.Runtime {
	case "auto", "docker", "podman":
		// Valid
	default:
		return fmt.Errorf("invalid runtime: %q (must be 'auto', 'docker' or 'podman')", cfg.Docker.Runtime)
	}

	if cfg.Environment.Username == "" {
		return fmt.Errorf("environment username cannot be empty")
	}

	if cfg.Environment.Shell == "" {
		return fmt.Errorf("environment shell cannot be empty")
	}

	return nil
}
