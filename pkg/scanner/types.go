// Package scanner locates a "from" and a "to" marker line in a log and
// measures the elapsed time between their timestamps.
package scanner

import (
	"time"
)

// Mode selects which of several matching lines becomes the marker.
type Mode int

const (
	// FirstMatch keeps the earliest matching line.
	FirstMatch Mode = iota
	// LastMatch lets every later matching line replace the earlier one.
	LastMatch
)

// String returns the mode name.
func (m Mode) String() string {
	if m == LastMatch {
		return "last"
	}
	return "first"
}

// Side names which marker a pattern belongs to.
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// MatchSpec is a marker pattern plus its match mode.
type MatchSpec struct {
	Pattern string
	Mode    Mode
}

// First returns a first-match spec for pattern.
func First(pattern string) MatchSpec {
	return MatchSpec{Pattern: pattern, Mode: FirstMatch}
}

// Last returns a last-match spec for pattern.
func Last(pattern string) MatchSpec {
	return MatchSpec{Pattern: pattern, Mode: LastMatch}
}

// Marker describes the line chosen for one side of a measurement.
type Marker struct {
	Side    Side
	Pattern string
	Mode    Mode

	// LineNum and Line belong to the matched line that supplied Timestamp.
	LineNum   int
	Line      string
	Timestamp time.Time
}

// Result is the outcome of a successful scan.
type Result struct {
	// Source is the file path or reader name that was scanned.
	Source string

	From Marker
	To   Marker

	// Duration is To.Timestamp minus From.Timestamp and may be negative.
	Duration time.Duration

	// LinesScanned counts lines read before the scan stopped.
	LinesScanned int
}
