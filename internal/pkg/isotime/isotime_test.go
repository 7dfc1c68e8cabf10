package isotime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_MillisecondUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 3, 1, 12, 30, 15, 123456789, loc)
	assert.Equal(t, "2024-03-01T09:30:15.123Z", Format(ts))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-01T09:30:15.123Z", time.Date(2024, 3, 1, 9, 30, 15, 123000000, time.UTC), true},
		{"2024-03-01T09:30:15+02:00", time.Date(2024, 3, 1, 7, 30, 15, 0, time.UTC), true},
		{"2024-03-01T09:30:15", time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC), true},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestParseOrLowest_Fallback(t *testing.T) {
	assert.True(t, Lowest.Equal(ParseOrLowest("not a date")))
	assert.True(t, ParseOrLowest("1969-07-20").After(Lowest))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 7, 4, 18, 0, 0, 5000000, time.UTC)
	got, ok := Parse(Format(ts))
	assert.True(t, ok)
	assert.True(t, ts.Equal(got))
}
