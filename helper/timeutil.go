package helper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeSlotRegex is the boundary format check for "HH:MM" 24h times. Inputs
// must pass it before reaching TimeToMinutes.
var TimeSlotRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func IsValidTimeSlot(s string) bool {
	return TimeSlotRegex.MatchString(s)
}

// TimeToMinutes converts a pre-validated "HH:MM" string to minutes since
// midnight. Purely lexical, no timezone involved.
func TimeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute
}

// MinutesToTime renders minutes since midnight back to "HH:MM", wrapping
// past midnight so a late slot plus duration stays a valid time of day.
func MinutesToTime(m int) string {
	m = ((m % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidateTimeRange checks the candidate's own start < end invariant,
// independent of overlap checking.
func ValidateTimeRange(startTime, endTime string) error {
	if endTime == "" {
		return nil
	}
	if TimeToMinutes(startTime) >= TimeToMinutes(endTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
