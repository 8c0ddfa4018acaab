package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ccollicutt/logdelta/pkg/output"
)

// Default values for configuration.
const (
	DefaultOutput         = output.FormatText
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvOutput = "LOGDELTA_OUTPUT"
	EnvRegex  = "LOGDELTA_REGEX"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvironmentOverrides() error {
	if format := os.Getenv(EnvOutput); format != "" {
		c.Output = format
	}

	if v := os.Getenv(EnvRegex); v != "" {
		regex, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvRegex, v)
		}
		c.Regex = regex
	}

	return nil
}
