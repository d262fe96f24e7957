package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// reportTimeLayouts are tried in order; all values are interpreted in UTC unless they carry an offset.
var reportTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	dateOnlyLayout,
}

// ParseReportTime parses a report range bound.
// A date-only value used as the end of a range expands to the last instant of that day.
func ParseReportTime(raw string, endOfRange bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	for _, layout := range reportTimeLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if layout == dateOnlyLayout && endOfRange {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q: use RFC3339 or YYYY-MM-DD", raw)
}

// IsReportTime reports whether raw is accepted by ParseReportTime.
func IsReportTime(raw string) bool {
	_, err := ParseReportTime(raw, false)
	return err == nil
}
