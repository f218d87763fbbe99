package trends

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparsableTimestamp is returned for timestamps in none of the accepted layouts.
var ErrUnparsableTimestamp = errors.New("unparsable timestamp")

// Layouts without an offset are read in the pipeline location; the rest carry their own.
var timestampLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", true},
}

// ParseTimestamp parses a recorded timestamp. Fractional seconds are accepted in every
// layout that has a seconds field.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparsableTimestamp)
	}
	if loc == nil {
		loc = time.Local
	}
	for _, l := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.layout, s, loc)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableTimestamp, s)
}
