package countdown

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for event.timezone
)

// LocalLayout is the zone-less form used for event targets, e.g.
// "2026-04-08T00:00:00".
const LocalLayout = "2006-01-02T15:04:05"

// ParseTarget parses an event target. A value without an offset is read in
// loc (time.Local when loc is nil); RFC 3339 values keep their own offset.
func ParseTarget(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("target is empty")
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(LocalLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	// Date-only shorthand means midnight.
	if t, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid target %q: want %s or RFC 3339", value, LocalLayout)
}

// LoadLocation resolves an IANA zone name. Empty means the host's local zone.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
