// Package config provides measurement profile loading and validation for logdelta.
package config

import (
	"time"

	"github.com/ccollicutt/logdelta/pkg/scanner"
)

// Config describes one measurement. It is loaded from a YAML profile
// and/or populated from command-line flags.
type Config struct {
	// File is the log file to scan.
	File string `yaml:"file,omitempty"`

	// Exactly one of From and FromLast must be set, and exactly one of To and ToLast.
	// The *Last variants select last-match mode for that side.
	From     string `yaml:"from,omitempty"`
	FromLast string `yaml:"from_last,omitempty"`
	To       string `yaml:"to,omitempty"`
	ToLast   string `yaml:"to_last,omitempty"`

	// Regex treats patterns as regular expressions.
	Regex bool `yaml:"regex,omitempty"`

	// Short prints the duration alone.
	Short bool `yaml:"short,omitempty"`

	// Output is the output format (text, json, table).
	Output string `yaml:"output,omitempty"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`

	// Resolved specs (populated during validation).
	fromSpec scanner.MatchSpec
	toSpec   scanner.MatchSpec
}

// FromSpec returns the resolved "from" match spec.
func (c *Config) FromSpec() scanner.MatchSpec {
	return c.fromSpec
}

// ToSpec returns the resolved "to" match spec.
func (c *Config) ToSpec() scanner.MatchSpec {
	return c.toSpec
}

// WebhookConfig defines an endpoint that receives the measurement report.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token; $VAR and ${VAR} are expanded.
	Token string `yaml:"token,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
