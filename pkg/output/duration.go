package output

import (
	"fmt"
	"time"
)

// MinusSign prefixes negative durations.
const MinusSign = "−"

// DurationUnit follows a duration in labeled output.
const DurationUnit = "(hh:mm:ss)"

// FormatDuration renders d as a signed hh:mm:ss string. Sub-second parts
// are truncated and hours are not wrapped at 24.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d / time.Second))
}

// FormatSeconds renders a signed whole-second count as ±hh:mm:ss.
func FormatSeconds(total int64) string {
	sign := "+"
	if total < 0 {
		sign = MinusSign
		total = -total
	}

	secs := total % 60
	mins := (total / 60) % 60
	hours := total / 3600
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, mins, secs)
}
