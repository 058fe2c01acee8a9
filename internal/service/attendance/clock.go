package attendance

import (
	"fmt"
	"strings"
	"time"
)

// shiftOffset is the fixed correction between the timezone the terminals
// record in and the canonical storage timezone. It is a property of the
// deployment, not of individual rows.
const shiftOffset = 5 * time.Hour

// NormalizeClock parses a raw time-of-day string in H:MM, HH:MM or
// HH:MM:SS form. Blank input yields no value and no error; inputs without
// a seconds component get ":00" appended before parsing.
func NormalizeClock(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if len(s) == 4 || len(s) == 5 {
		s += ":00"
	}

	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return nil, fmt.Errorf("parse clock value %q: %w", raw, err)
	}
	return &t, nil
}

// ResolveShiftTime combines a calendar date with a parsed time-of-day and
// applies the shift offset, producing the absolute instant to store. Nil
// in either input propagates to a nil result.
func ResolveShiftTime(date *time.Time, clock *time.Time) *time.Time {
	if date == nil || clock == nil {
		return nil
	}
	combined := time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	).Add(-shiftOffset)
	return &combined
}
