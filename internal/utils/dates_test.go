package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportTime(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		endOfRange bool
		want       time.Time
	}{
		{"rfc3339", "2020-08-15T19:11:26Z", false, time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)},
		{"rfc3339 with offset", "2020-08-15T21:11:26+02:00", false, time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)},
		{"space separated", "2020-08-15 19:11:26", true, time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)},
		{"date as start", "2020-08-10", false, time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC)},
		{"date as end", "2020-08-17", true, time.Date(2020, 8, 17, 23, 59, 59, 999999999, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReportTime(tt.raw, tt.endOfRange)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseReportTime_Invalid(t *testing.T) {
	for _, raw := range []string{"", "  ", "yesterday", "2020-13-01", "15/08/2020"} {
		_, err := ParseReportTime(raw, false)
		assert.Error(t, err, raw)
		assert.False(t, IsReportTime(raw))
	}
	assert.True(t, IsReportTime("2020-08-15"))
}
