// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"clubsocios_backend/internals/configs"
)

const DateLayout = "2006-01-02"

var (
	locMu    sync.Mutex
	locName  string
	locCache *time.Location
)

// ClubLocation resolves configs.ClubTimezone, falling back to UTC.
func ClubLocation() *time.Location {
	name := strings.TrimSpace(configs.ClubTimezone)
	if name == "" {
		name = "America/Argentina/Buenos_Aires"
	}

	locMu.Lock()
	defer locMu.Unlock()
	if locCache != nil && locName == name {
		return locCache
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	locName, locCache = name, loc
	return loc
}

// DateOf returns the calendar date of t as seen in the club, encoded as UTC midnight.
func DateOf(t time.Time) time.Time {
	lt := t.In(ClubLocation())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is DateOf(time.Now()).
func Today() time.Time { return DateOf(time.Now()) }

// ParseDate accepts "YYYY-MM-DD" or an RFC3339 timestamp and returns UTC midnight of that date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q, formato esperado %s", s, DateLayout)
}

// NormalizeDate drops the clock part and zone, keeping the calendar date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns [start, end) instants of the given calendar date in the club timezone.
func DayRange(day time.Time) (time.Time, time.Time) {
	loc := ClubLocation()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
