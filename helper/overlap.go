package helper

import (
	"fmt"

	"studio_manager/model"
)

// HasOverlap checks a candidate [newStart, newEnd) minute range against the
// existing active schedules of the same item and day. Schedules without an
// end time borrow the item duration. The first colliding interval wins;
// schedules on other days never conflict and must not be passed in.
func HasOverlap(newStart, newEnd int, existing []model.ItemSchedule, itemDuration int) (bool, string) {
	for _, sch := range existing {
		if !sch.IsActive {
			continue
		}
		s := TimeToMinutes(sch.StartTime)
		e := s + itemDuration
		if sch.EndTime != "" {
			e = TimeToMinutes(sch.EndTime)
		}

		startsInside := newStart >= s && newStart < e
		endsInside := newEnd > s && newEnd <= e
		contains := newStart <= s && newEnd >= e

		if startsInside || endsInside || contains {
			return true, fmt.Sprintf("overlaps existing schedule %s-%s", MinutesToTime(s), MinutesToTime(e))
		}
	}
	return false, ""
}

// ValidateScheduleSet checks a wholesale replacement set: every schedule's
// own time range plus pairwise overlap per day within the incoming set.
func ValidateScheduleSet(schedules []model.ItemSchedule, itemDuration int) error {
	for i, sch := range schedules {
		end := sch.EndTime
		if end == "" {
			end = MinutesToTime(TimeToMinutes(sch.StartTime) + itemDuration)
		}
		if err := ValidateTimeRange(sch.StartTime, sch.EndTime); err != nil {
			return err
		}
		if !sch.IsActive {
			continue
		}

		var sameDay []model.ItemSchedule
		for j := 0; j < i; j++ {
			if schedules[j].DayOfWeek == sch.DayOfWeek {
				sameDay = append(sameDay, schedules[j])
			}
		}
		if overlap, _ := HasOverlap(TimeToMinutes(sch.StartTime), TimeToMinutes(end), sameDay, itemDuration); overlap {
			return ErrScheduleOverlap
		}
	}
	return nil
}
