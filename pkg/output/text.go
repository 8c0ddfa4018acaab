package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter prints a single human-readable line.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return FormatText
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	var err error
	if f.opts.Short {
		_, err = fmt.Fprintln(w, report.Duration)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s %s\n", report.Label(), report.Duration, DurationUnit)
	}
	return err
}
