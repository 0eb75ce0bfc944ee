package config

import "os/user"

const (
	DefaultRuntime  = "auto"
	DefaultShell    = "bash"
	DefaultUsername = "user"
)

// Default returns a Config with all default values applied.
// The username defaults to the invoking OS user.
func Default() *Config {
	return &Config{
		Docker: DockerConfig{
			Runtime: DefaultRuntime,
		},
		Environment: EnvironmentConfig{
			Username: currentUsername(),
			Shell:    DefaultShell,
		},
	}
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return DefaultUsername
}
