package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
)

func TestParse(t *testing.T) {
	d, err := Parse("2026-04-02", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), d)

	d, err = Parse("2026-04-02T10:30:00+02:00", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, d.UTC().Hour())

	_, err = Parse("02/04/2026", nil)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestParseKeepsCalendarDayInZone(t *testing.T) {
	ny := Location("America/New_York")
	d, err := Parse("2026-10-15", ny)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", Day(d, ny).Format(Layout))

	// mid afternoon in New York is already the next day in UTC
	now := time.Date(2026, 10, 15, 15, 0, 0, 0, ny)
	assert.Equal(t, 0, DaysBetween(now, d, ny))
	assert.Equal(t, 1, DaysBetween(now, d.AddDate(0, 0, 1), ny))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, time.UTC, Fixed(nil).Location("anyone"))
	ny := Location("America/New_York")
	assert.Equal(t, ny, Fixed(ny).Location("u1"))
}

func TestParsePtr(t *testing.T) {
	p, err := ParsePtr(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, p)

	empty := " "
	p, err = ParsePtr(&empty, nil)
	assert.NoError(t, err)
	assert.Nil(t, p)

	v := "2026-01-10"
	p, err = ParsePtr(&v, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Day())
}

func TestDaysBetween(t *testing.T) {
	loc := Location("America/New_York")
	a := time.Date(2026, 5, 1, 23, 0, 0, 0, loc)
	b := time.Date(2026, 5, 2, 1, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(a, b, loc))
	assert.Equal(t, -1, DaysBetween(b, a, loc))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
}
