package dbtime

import (
	"testing"
	"time"
	_ "time/tzdata"

	"clubsocios_backend/internals/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTimezone(t *testing.T, name string) {
	t.Helper()
	prev := configs.ClubTimezone
	configs.ClubTimezone = name
	t.Cleanup(func() { configs.ClubTimezone = prev })
}

func TestDateOf_UsesClubTimezone(t *testing.T) {
	withTimezone(t, "America/Argentina/Buenos_Aires")

	// 01:30 UTC is still the previous evening in Buenos Aires
	instant := time.Date(2026, 1, 10, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), DateOf(instant))

	start, end := DayRange(time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 1, 9, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC), end)
	assert.False(t, instant.Before(start))
	assert.True(t, instant.Before(end))
}

func TestClubLocation_FallsBackToUTC(t *testing.T) {
	withTimezone(t, "Nowhere/Invalid")
	assert.Equal(t, time.UTC, ClubLocation())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-02-28T23:10:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", FormatDate(d))

	for _, bad := range []string{"", "28/02/2026", "2026-13-01"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2025-12-01", FormatDate(NormalizeDate(time.Date(2025, 12, 1, 18, 0, 0, 0, time.Local))))
}
