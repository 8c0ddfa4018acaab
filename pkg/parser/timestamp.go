package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TimestampLayout is the only timestamp layout logdelta understands.
	TimestampLayout = "2006-01-02 15:04:05"

	// TimestampPattern finds a TimestampLayout value anywhere in a line.
	TimestampPattern = `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`

	// PrefixDelimiter ends the timestamp field of a line in substring mode.
	PrefixDelimiter = ">"
)

// ErrNoTimestamp is returned when a line carries no timestamp field.
var ErrNoTimestamp = errors.New("no timestamp in line")

var (
	timestampRegexp      = regexp.MustCompile(TimestampPattern)
	exactTimestampRegexp = regexp.MustCompile(`^` + TimestampPattern + `$`)
)

// TimestampExtractor extracts and parses a timestamp from a log line.
type TimestampExtractor interface {
	Extract(line string) (time.Time, error)
}

// EmbeddedExtractor finds the first timestamp anywhere in the line.
type EmbeddedExtractor struct{}

// Extract implements TimestampExtractor.
func (EmbeddedExtractor) Extract(line string) (time.Time, error) {
	ts := timestampRegexp.FindString(line)
	if ts == "" {
		return time.Time{}, ErrNoTimestamp
	}
	return ParseTimestamp(ts)
}

// PrefixExtractor treats everything before the first ">" as the timestamp.
type PrefixExtractor struct{}

// Extract implements TimestampExtractor.
func (PrefixExtractor) Extract(line string) (time.Time, error) {
	ts, _, ok := strings.Cut(line, PrefixDelimiter)
	if !ok {
		return time.Time{}, ErrNoTimestamp
	}
	return ParseTimestamp(ts)
}

// NewTimestampExtractor returns the extractor used by the given match mode.
func NewTimestampExtractor(regex bool) TimestampExtractor {
	if regex {
		return EmbeddedExtractor{}
	}
	return PrefixExtractor{}
}

// ParseTimestamp parses s as a naive TimestampLayout value (returned in UTC).
// s must match the layout exactly; fractional seconds or trailing text are rejected.
func ParseTimestamp(s string) (time.Time, error) {
	if !exactTimestampRegexp.MatchString(s) {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: does not match %s", s, TimestampLayout)
	}

	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return ts, nil
}
