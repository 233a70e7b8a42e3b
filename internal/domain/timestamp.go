package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimestampLayout is the fixed layout ledger timestamps are stored in.
	DefaultTimestampLayout = "2006-01-02 15:04:05"

	// InvalidDate is stored in place of a timestamp that could not be parsed.
	// Submissions are never rejected because of their timestamp.
	InvalidDate = "Invalid Date"
)

// zonedLayouts carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// localLayouts are interpreted in the ledger's time zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a client-supplied point in time. Accepted forms are
// ISO-8601/RFC3339 (with or without offset), RFC1123 and Unix milliseconds.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}
	return time.Time{}, false
}

// FormatTimestamp reformats raw into layout in loc. Unparsable input yields
// InvalidDate rather than an error.
func FormatTimestamp(raw string, loc *time.Location, layout string) string {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseTimestamp(raw, loc)
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format(layout)
}
