// Package utils provides utility functions for the application.
package utils

import (
	"fmt"
	"time"
)

// CivilDateLayout is the wire format for all date fields.
const CivilDateLayout = "2006-01-02"

// CanonicalTimezone is the civil timezone every calendar date is anchored to
// before being persisted as a UTC instant.
const CanonicalTimezone = "Europe/Bucharest"

var canonicalLocation = mustLoadCanonicalLocation()

func mustLoadCanonicalLocation() *time.Location {
	loc, err := time.LoadLocation(CanonicalTimezone)
	if err != nil {
		panic(fmt.Sprintf("failed to load canonical timezone %s: %v", CanonicalTimezone, err))
	}
	return loc
}

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowPtr returns a pointer to the current time in UTC
func UTCNowPtr() *time.Time {
	now := UTCNow()
	return &now
}

// ParseCivilDate parses a YYYY-MM-DD string as midnight in the canonical
// civil timezone and returns the equivalent UTC instant, so stored values
// are timezone-unambiguous.
func ParseCivilDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CivilDateLayout, s, canonicalLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatCivilDate renders a stored instant back to the YYYY-MM-DD calendar
// day it denotes in the canonical timezone.
func FormatCivilDate(t time.Time) string {
	return t.In(canonicalLocation).Format(CivilDateLayout)
}

// CivilDay truncates an instant to the start of its calendar day in the
// canonical timezone. Two instants denote the same calendar day iff their
// CivilDay values are equal, and day ordering follows CivilDay ordering.
func CivilDay(t time.Time) time.Time {
	local := t.In(canonicalLocation)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, canonicalLocation)
}

// SameCivilDay reports whether two instants denote the same calendar day.
func SameCivilDay(a, b time.Time) bool {
	return CivilDay(a).Equal(CivilDay(b))
}

// CivilDayBefore reports whether a denotes a calendar day strictly before b.
func CivilDayBefore(a, b time.Time) bool {
	return CivilDay(a).Before(CivilDay(b))
}

// CivilDayAfter reports whether a denotes a calendar day strictly after b.
func CivilDayAfter(a, b time.Time) bool {
	return CivilDay(a).After(CivilDay(b))
}
