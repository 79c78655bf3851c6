package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpandWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	mondays := ExpandWeekday(1, date("2024-01-01"), date("2024-01-15"))
	require.Len(t, mondays, 3)
	assert.Equal(t, "2024-01-01", mondays[0].Format("2006-01-02"))
	assert.Equal(t, "2024-01-08", mondays[1].Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", mondays[2].Format("2006-01-02"))

	// Bounds are inclusive on both ends.
	single := ExpandWeekday(1, date("2024-01-08"), date("2024-01-08"))
	require.Len(t, single, 1)

	// Sunday is 0.
	sundays := ExpandWeekday(0, date("2024-01-01"), date("2024-01-07"))
	require.Len(t, sundays, 1)
	assert.Equal(t, "2024-01-07", sundays[0].Format("2006-01-02"))
}

func TestExpandWeekdayEmptyResults(t *testing.T) {
	// Range too short to contain the weekday.
	assert.Empty(t, ExpandWeekday(0, date("2024-01-01"), date("2024-01-06")))

	// Inverted range yields nothing, not an error.
	assert.Empty(t, ExpandWeekday(1, date("2024-01-15"), date("2024-01-01")))
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-01-31", end.Format("2006-01-02"))

	_, _, err = ParseDateRange("", "2024-01-31")
	assert.ErrorIs(t, err, ErrEmptyDateRange)

	_, _, err = ParseDateRange("2024-01-01", "")
	assert.ErrorIs(t, err, ErrEmptyDateRange)

	_, _, err = ParseDateRange("01/01/2024", "2024-01-31")
	assert.Error(t, err)

	// Inverted bounds parse fine; expansion over them is simply empty.
	_, _, err = ParseDateRange("2024-02-01", "2024-01-01")
	assert.NoError(t, err)
}
