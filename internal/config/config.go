// Package config loads setupver defaults from the environment.
package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

// Config holds defaults for command-line arguments. Flags and positional
// arguments take precedence over every field.
type Config struct {
	File      string `env:"SETUPVER_FILE,default=setup.py"`
	Version   string `env:"SETUPVER_VERSION"`
	LogLevel  string `env:"SETUPVER_LOG_LEVEL,default=warn"`
	LogFormat string `env:"SETUPVER_LOG_FORMAT,default=text"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return cfg, nil
}
