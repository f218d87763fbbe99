package trends

import (
	"fmt"
	"time"

	"github.com/localnerve/supportdash/internal/types"
)

// PresetsVersion identifies the revision of the named date-range presets.
const PresetsVersion = "2024.1"

// CustomRangeKey selects literal start/end bounds instead of a preset.
const CustomRangeKey = "custom"

// DefaultRangeKey is used when a caller names no range.
const DefaultRangeKey = "30d"

// Preset is a named window of whole calendar days ending today.
type Preset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

var presets = []Preset{
	{Key: "7d", Label: "Last 7 days", Days: 7},
	{Key: "30d", Label: "Last 30 days", Days: 30},
	{Key: "90d", Label: "Last 90 days", Days: 90},
}

// Presets returns the named presets, shortest first.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// DateRange bounds log timestamps inclusively. A nil bound is unbounded on that side.
type DateRange struct {
	Start *time.Time `json:"startDate,omitempty"`
	End   *time.Time `json:"endDate,omitempty"`
}

// Inverted reports whether the range has both bounds with start after end. Such a
// range matches nothing.
func (r DateRange) Inverted() bool {
	return r.Start != nil && r.End != nil && r.Start.After(*r.End)
}

// Contains reports whether t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// CustomRange returns literal bounds; nothing is normalised.
func CustomRange(start, end *time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// RangeOption is a preset resolved against a point in time.
type RangeOption struct {
	Label     string    `json:"label"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ResolvePreset resolves key relative to now, in now's location. The window ends at
// the last millisecond of today and starts at midnight Days-1 days ago, so "7d"
// always spans exactly seven calendar days including today.
func ResolvePreset(key string, now time.Time) (DateRange, error) {
	for _, p := range presets {
		if p.Key == key {
			start, end := presetBounds(p.Days, now)
			return DateRange{Start: &start, End: &end}, nil
		}
	}
	return DateRange{}, types.Invalid("unknown date range %q", key)
}

// DateRangeOptions resolves every preset against now.
func DateRangeOptions(now time.Time) map[string]RangeOption {
	out := make(map[string]RangeOption, len(presets))
	for _, p := range presets {
		start, end := presetBounds(p.Days, now)
		out[p.Key] = RangeOption{Label: p.Label, StartDate: start, EndDate: end}
	}
	return out
}

func presetBounds(days int, now time.Time) (time.Time, time.Time) {
	today := startOfDay(now)
	end := today.AddDate(0, 0, 1).Add(-time.Millisecond)
	start := today.AddDate(0, 0, -(days - 1))
	return start, end
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseBound parses an optional custom bound; blank input is unbounded.
func ParseBound(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(s, loc)
	if err != nil {
		return nil, types.Invalid("date bound: %v", err)
	}
	return &t, nil
}

// ResolveRange picks a preset or, for "custom", the literal bounds.
func ResolveRange(key, start, end string, now time.Time) (DateRange, error) {
	if key == "" {
		key = DefaultRangeKey
	}
	if key != CustomRangeKey {
		return ResolvePreset(key, now)
	}
	s, err := ParseBound(start, now.Location())
	if err != nil {
		return DateRange{}, fmt.Errorf("startDate: %w", err)
	}
	e, err := ParseBound(end, now.Location())
	if err != nil {
		return DateRange{}, fmt.Errorf("endDate: %w", err)
	}
	return CustomRange(s, e), nil
}
