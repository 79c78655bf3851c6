package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTimeSlot(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "18:05", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidTimeSlot(s), s)
	}

	invalid := []string{"", "24:00", "18:60", "9.30", "0930", "9:3", "-1:00", "18:05:00"}
	for _, s := range invalid {
		assert.False(t, IsValidTimeSlot(s), s)
	}
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 570, TimeToMinutes("09:30"))
	assert.Equal(t, 570, TimeToMinutes("9:30"))
	assert.Equal(t, 1085, TimeToMinutes("18:05"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "23:59", MinutesToTime(1439))
	// Late slot plus duration wraps past midnight.
	assert.Equal(t, "00:30", MinutesToTime(1470))
}

func TestMinutesToTimeRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:15", "12:00", "18:45", "23:59"} {
		assert.Equal(t, s, MinutesToTime(TimeToMinutes(s)))
	}
}

func TestValidateTimeRange(t *testing.T) {
	assert.NoError(t, ValidateTimeRange("09:00", "10:00"))
	assert.NoError(t, ValidateTimeRange("09:00", ""))

	assert.ErrorIs(t, ValidateTimeRange("10:00", "09:00"), ErrInvalidTimeRange)
	assert.ErrorIs(t, ValidateTimeRange("09:00", "09:00"), ErrInvalidTimeRange)
}
