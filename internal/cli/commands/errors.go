package commands

import (
	"errors"

	"github.com/ccollicutt/logdelta/pkg/scanner"
)

// Exit codes returned by the CLI.
const (
	ExitOK            = 0
	ExitMarkerMissing = 1 // marker not found or its timestamp unparsable
	ExitError         = 2 // configuration or runtime error
)

// ConfigError marks an error in flags or profile, detected before scanning.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var cfgErr *ConfigError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cfgErr):
		return ExitError
	case errors.Is(err, scanner.ErrNotFound), errors.Is(err, scanner.ErrNoTimestamp):
		return ExitMarkerMissing
	default:
		return ExitError
	}
}
