package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "+00:00:00"},
		{"five and a half minutes", 330 * time.Second, "+00:05:30"},
		{"one hour one minute one second", 3661 * time.Second, "+01:01:01"},
		{"negative ninety seconds", -90 * time.Second, "−00:01:30"},
		{"hours not wrapped", 49*time.Hour + 2*time.Second, "+49:00:02"},
		{"three digit hours", 123*time.Hour + 4*time.Minute, "+123:04:00"},
		{"sub-second truncated", 1500 * time.Millisecond, "+00:00:01"},
		{"negative sub-second is zero", -999 * time.Millisecond, "+00:00:00"},
		{"negative truncates toward zero", -61500 * time.Millisecond, "−00:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestFormatSeconds_UsesUnicodeMinus(t *testing.T) {
	got := FormatSeconds(-1)
	assert.Equal(t, "−00:00:01", got)
	assert.NotContains(t, got, "-")
}

func TestFormatSeconds_Deterministic(t *testing.T) {
	for _, s := range []int64{-86400, -1, 0, 59, 3600, 360000} {
		assert.Equal(t, FormatSeconds(s), FormatSeconds(s))
	}
}
