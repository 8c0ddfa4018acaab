// Package output provides formatting of measurement results.
package output

import (
	"fmt"
	"time"

	"github.com/ccollicutt/logdelta/pkg/parser"
	"github.com/ccollicutt/logdelta/pkg/scanner"
)

// Report is the complete measurement output.
type Report struct {
	From MarkerReport `json:"from"`
	To   MarkerReport `json:"to"`

	// Duration is the formatted ±hh:mm:ss elapsed time.
	Duration string `json:"duration"`

	// Seconds is the signed elapsed time in whole seconds.
	Seconds int64 `json:"seconds"`

	Metadata Metadata `json:"metadata"`
}

// MarkerReport describes one marker line.
type MarkerReport struct {
	Pattern   string `json:"pattern"`
	Mode      string `json:"mode"`
	LineNum   int    `json:"line_num"`
	Line      string `json:"line"`
	Timestamp string `json:"timestamp"`
}

// Metadata provides context about the measurement.
type Metadata struct {
	Source       string    `json:"source"`
	Regex        bool      `json:"regex"`
	LinesScanned int       `json:"lines_scanned"`
	MeasuredAt   time.Time `json:"measured_at"`
}

// ShortReport is the duration-only form of a Report.
type ShortReport struct {
	Duration string `json:"duration"`
	Seconds  int64  `json:"seconds"`
}

// NewReport creates a Report from a scan result.
func NewReport(result *scanner.Result, regex bool) *Report {
	return &Report{
		From:     newMarkerReport(result.From),
		To:       newMarkerReport(result.To),
		Duration: FormatDuration(result.Duration),
		Seconds:  int64(result.Duration / time.Second),
		Metadata: Metadata{
			Source:       result.Source,
			Regex:        regex,
			LinesScanned: result.LinesScanned,
			MeasuredAt:   time.Now(),
		},
	}
}

func newMarkerReport(m scanner.Marker) MarkerReport {
	return MarkerReport{
		Pattern:   m.Pattern,
		Mode:      m.Mode.String(),
		LineNum:   m.LineNum,
		Line:      m.Line,
		Timestamp: m.Timestamp.Format(parser.TimestampLayout),
	}
}

// Short returns the duration-only view of the report.
func (r *Report) Short() ShortReport {
	return ShortReport{Duration: r.Duration, Seconds: r.Seconds}
}

// Label returns the quoted `"from" => "to"` prefix used by the text format.
func (r *Report) Label() string {
	return fmt.Sprintf("\"%s\" => \"%s\"", r.From.Pattern, r.To.Pattern)
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case FormatText:
		return NewTextFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatTable:
		return NewTableFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json or table)", name)
	}
}
