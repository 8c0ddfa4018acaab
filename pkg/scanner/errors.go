package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is matched by every *PatternError.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("pattern not found")

	// ErrNoTimestamp is matched by every *TimestampError.
	ErrNoTimestamp = errors.New("could not parse a timestamp")
)

// PatternError reports a pattern that failed to compile as a regular expression.
type PatternError struct {
	Side    Side
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s pattern '%s' is not a valid regex: %v", e.Side, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// NotFoundError reports a marker pattern that no line matched.
type NotFoundError struct {
	Side    Side
	Pattern string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("did not find '%s'", e.Pattern)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TimestampError reports a marker that matched, but never on a line with a
// parseable timestamp.
type TimestampError struct {
	Side    Side
	Pattern string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("could not parse a timestamp for %s pattern '%s'", e.Side, e.Pattern)
}

func (e *TimestampError) Is(target error) bool { return target == ErrNoTimestamp }
