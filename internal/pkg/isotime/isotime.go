// Package isotime formats and parses the ISO-8601 timestamps persisted by the
// stores. Values are kept as strings on the entities so that a saved
// collection reloads byte for byte.
package isotime

import (
	"strings"
	"time"
)

// Layout is UTC with millisecond precision and a literal Z suffix,
// e.g. 2024-03-01T09:30:00.000Z.
const Layout = "2006-01-02T15:04:05.000Z"

// Lowest is the value unparsable timestamps sort as. It precedes every
// timestamp Parse can return except 0001-01-01T00:00:00Z itself.
var Lowest = time.Time{}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse accepts full RFC3339 timestamps as well as the date-only and
// zone-less forms clients commonly send. Zone-less values are read as UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseOrLowest never fails: anything Parse rejects becomes Lowest.
func ParseOrLowest(s string) time.Time {
	if t, ok := Parse(s); ok {
		return t
	}
	return Lowest
}
