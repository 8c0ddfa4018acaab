package output

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders both markers and the duration as a table.
type TableFormatter struct {
	opts FormatOptions
}

// NewTableFormatter creates a new table formatter with the given options.
func NewTableFormatter(opts FormatOptions) *TableFormatter {
	return &TableFormatter{opts: opts}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return FormatTable
}

// Format renders the report as a table.
func (f *TableFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	table := tablewriter.NewWriter(w)

	if f.opts.Short {
		table.Header("Duration", "Seconds")
		if err := table.Append(report.Duration, strconv.FormatInt(report.Seconds, 10)); err != nil {
			return fmt.Errorf("building table: %w", err)
		}
		return table.Render()
	}

	table.Header("Marker", "Pattern", "Mode", "Line", "Timestamp")
	for _, row := range []struct {
		name string
		m    MarkerReport
	}{
		{"from", report.From},
		{"to", report.To},
	} {
		if err := table.Append(
			row.name,
			row.m.Pattern,
			row.m.Mode,
			strconv.Itoa(row.m.LineNum),
			row.m.Timestamp,
		); err != nil {
			return fmt.Errorf("building table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Duration: %s %s\n", report.Duration, DurationUnit)
	return err
}
