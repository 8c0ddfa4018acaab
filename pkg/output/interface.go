package output

import (
	"context"
	"io"
)

// Formatter renders a measurement report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, table).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Short prints the duration alone, without the marker patterns.
	Short bool
}

// Format names accepted by NewFormatter.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatJSON, FormatTable}
