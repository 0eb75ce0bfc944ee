package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "PYDOCK_REPOSITORY",
		apply: func(c *Config, v string) {
			c.Docker.Repository = v
		},
	},
	{
		envVar: "PYDOCK_SUDO",
		apply: func(c *Config, v string) {
			c.Docker.Sudo = v == "1" || v == "true"
		},
	},
	{
		envVar: "PYDOCK_RUNTIME",
		apply: func(c *Config, v string) {
			c.Docker.Runtime = v
		},
	},
	{
		envVar: "PYDOCK_USERNAME",
		apply: func(c *Config, v string) {
			c.Environment.Username = v
		},
	},
	{
		envVar: "PYDOCK_SHELL",
		apply: func(c *Config, v string) {
			c.Environment.Shell = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
