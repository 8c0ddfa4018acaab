package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/logdelta/pkg/output"
	"github.com/ccollicutt/logdelta/pkg/scanner"
)

// Load reads a measurement profile, applies environment overrides and validates it.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Read reads a measurement profile and applies environment overrides
// without validating, so callers can layer flags on top first.
func Read(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks a configuration for errors and resolves the match specs.
// In regex mode both patterns are compiled, so a bad pattern is reported
// here before any file is opened.
func Validate(cfg *Config) error {
	from, err := resolveSpec("from", cfg.From, cfg.FromLast)
	if err != nil {
		return err
	}

	to, err := resolveSpec("to", cfg.To, cfg.ToLast)
	if err != nil {
		return err
	}

	if _, err := scanner.CompileMatcher(scanner.SideFrom, from, cfg.Regex); err != nil {
		return err
	}
	if _, err := scanner.CompileMatcher(scanner.SideTo, to, cfg.Regex); err != nil {
		return err
	}

	cfg.fromSpec = from
	cfg.toSpec = to

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if !slices.Contains(output.Formats, cfg.Output) {
		return fmt.Errorf("output: invalid format %q (must be one of %s)",
			cfg.Output, strings.Join(output.Formats, ", "))
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

// resolveSpec turns a first/last pair into a match spec. Exactly one of
// the two may be set.
func resolveSpec(side, first, last string) (scanner.MatchSpec, error) {
	switch {
	case first != "" && last != "":
		return scanner.MatchSpec{}, fmt.Errorf("%s and %s_last are mutually exclusive", side, side)
	case first != "":
		return scanner.First(first), nil
	case last != "":
		return scanner.Last(last), nil
	default:
		return scanner.MatchSpec{}, fmt.Errorf("one of %s or %s_last is required", side, side)
	}
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
