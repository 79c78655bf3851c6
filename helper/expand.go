package helper

import "time"

// ExpandWeekday walks every calendar day from start to end inclusive and
// returns, in ascending order, the dates whose weekday matches dayOfWeek
// (0=Sunday .. 6=Saturday). An empty result is valid: start after end, or a
// range too short to contain that weekday.
func ExpandWeekday(dayOfWeek int, start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if int(d.Weekday()) == dayOfWeek {
			dates = append(dates, d)
		}
	}
	return dates
}

// ParseDateRange validates the two "YYYY-MM-DD" bounds supplied by the
// caller. Both must be present and well-formed. An inverted range is not an
// error; expansion over it simply yields nothing.
func ParseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, ErrEmptyDateRange
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
