package helper

import (
	"testing"

	"studio_manager/model"

	"github.com/stretchr/testify/assert"
)

func schedule(day int, start, end string, active bool) model.ItemSchedule {
	return model.ItemSchedule{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		IsActive:  active,
	}
}

func TestHasOverlap(t *testing.T) {
	existing := []model.ItemSchedule{schedule(1, "09:00", "10:00", true)}

	// Candidate starting inside the existing interval collides.
	overlap, msg := HasOverlap(TimeToMinutes("09:30"), TimeToMinutes("10:30"), existing, 60)
	assert.True(t, overlap)
	assert.Contains(t, msg, "09:00")

	// Candidate ending inside collides.
	overlap, _ = HasOverlap(TimeToMinutes("08:30"), TimeToMinutes("09:30"), existing, 60)
	assert.True(t, overlap)

	// Candidate fully containing the existing interval collides.
	overlap, _ = HasOverlap(TimeToMinutes("08:00"), TimeToMinutes("11:00"), existing, 60)
	assert.True(t, overlap)

	// Identical interval collides.
	overlap, _ = HasOverlap(TimeToMinutes("09:00"), TimeToMinutes("10:00"), existing, 60)
	assert.True(t, overlap)
}

func TestHasOverlapAdjacentSlots(t *testing.T) {
	existing := []model.ItemSchedule{schedule(1, "09:00", "10:00", true)}

	// Intervals are half-open: back to back slots do not collide.
	overlap, _ := HasOverlap(TimeToMinutes("10:00"), TimeToMinutes("11:00"), existing, 60)
	assert.False(t, overlap)

	overlap, _ = HasOverlap(TimeToMinutes("08:00"), TimeToMinutes("09:00"), existing, 60)
	assert.False(t, overlap)
}

func TestHasOverlapSkipsInactive(t *testing.T) {
	existing := []model.ItemSchedule{schedule(1, "09:00", "10:00", false)}

	overlap, _ := HasOverlap(TimeToMinutes("09:00"), TimeToMinutes("10:00"), existing, 60)
	assert.False(t, overlap)
}

func TestHasOverlapDefaultsEndToDuration(t *testing.T) {
	// No end time stored: the item duration defines the interval.
	existing := []model.ItemSchedule{schedule(3, "18:00", "", true)}

	overlap, _ := HasOverlap(TimeToMinutes("18:30"), TimeToMinutes("19:30"), existing, 60)
	assert.True(t, overlap)

	overlap, _ = HasOverlap(TimeToMinutes("19:00"), TimeToMinutes("20:00"), existing, 60)
	assert.False(t, overlap)
}

func TestValidateScheduleSet(t *testing.T) {
	ok := []model.ItemSchedule{
		schedule(1, "09:00", "10:00", true),
		schedule(1, "10:00", "11:00", true),
		schedule(3, "09:30", "10:30", true), // other day, same time is fine
	}
	assert.NoError(t, ValidateScheduleSet(ok, 60))

	colliding := []model.ItemSchedule{
		schedule(1, "09:00", "10:00", true),
		schedule(1, "09:30", "10:30", true),
	}
	assert.ErrorIs(t, ValidateScheduleSet(colliding, 60), ErrScheduleOverlap)

	badRange := []model.ItemSchedule{schedule(1, "10:00", "09:00", true)}
	assert.ErrorIs(t, ValidateScheduleSet(badRange, 60), ErrInvalidTimeRange)

	// Inactive duplicates are allowed to coexist.
	inactiveDup := []model.ItemSchedule{
		schedule(1, "09:00", "10:00", true),
		schedule(1, "09:00", "10:00", false),
	}
	assert.NoError(t, ValidateScheduleSet(inactiveDup, 60))
}
