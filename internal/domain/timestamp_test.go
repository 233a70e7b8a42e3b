package domain

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		raw  string
		loc  *time.Location
		want string
	}{
		{name: "RFC3339 UTC", raw: "2025-07-01T10:30:00Z", loc: time.UTC, want: "2025-07-01 10:30:00"},
		{name: "JS toISOString", raw: "2025-07-01T10:30:00.123Z", loc: time.UTC, want: "2025-07-01 10:30:00"},
		{name: "converted to zone", raw: "2025-07-01T10:30:00Z", loc: sydney, want: "2025-07-01 20:30:00"},
		{name: "offset", raw: "2025-07-01T10:30:00+02:00", loc: time.UTC, want: "2025-07-01 08:30:00"},
		{name: "local without offset", raw: "2025-07-01T10:30:00", loc: sydney, want: "2025-07-01 10:30:00"},
		{name: "date only", raw: "2025-07-01", loc: time.UTC, want: "2025-07-01 00:00:00"},
		{name: "unix millis", raw: "1751365800000", loc: time.UTC, want: "2025-07-01 10:30:00"},
		{name: "garbage", raw: "yesterday", loc: time.UTC, want: InvalidDate},
		{name: "empty", raw: "", loc: time.UTC, want: InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatTimestamp(tt.raw, tt.loc, DefaultTimestampLayout); got != tt.want {
				t.Errorf("FormatTimestamp(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
