package helper

import (
	"time"

	"studio_manager/model"
)

// SessionStub is a materialized session before persistence: no id yet,
// identity is assigned when the batch is inserted. The materializer does
// not de-duplicate against already-existing sessions; submitting the same
// batch twice creates duplicate rows.
type SessionStub struct {
	ItemId    uint   `json:"itemId"`
	TeacherId *uint  `json:"teacherId"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
}

// ConvertTemplateSessionsToDates expands a MANUAL template's stubs over
// [startDate, endDate]. Each stub expands independently, so one day may
// yield several sessions. Missing stubs or an empty date bound short-
// circuits to an empty result rather than an error.
func ConvertTemplateSessionsToDates(manual []model.ManualSession, startDate, endDate string) []SessionStub {
	if len(manual) == 0 || startDate == "" || endDate == "" {
		return []SessionStub{}
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return []SessionStub{}
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return []SessionStub{}
	}

	stubs := []SessionStub{}
	for _, ms := range manual {
		for _, d := range ExpandWeekday(ms.DayOfWeek, start, end) {
			stubs = append(stubs, SessionStub{
				ItemId:    ms.ItemId,
				TeacherId: ms.TeacherId,
				Date:      d.Format("2006-01-02"),
				StartTime: ms.StartTime,
				Notes:     ms.Notes,
			})
		}
	}
	return stubs
}

// MaterializeFromSchedules expands every active schedule of the given
// items over [start, end]. End times default to start plus the item's
// duration. Teachers are left unassigned; bulk-assign fills them in later.
func MaterializeFromSchedules(items []model.Item, start, end time.Time) []SessionStub {
	stubs := []SessionStub{}
	for _, item := range items {
		for _, sch := range item.Schedules {
			if !sch.IsActive {
				continue
			}
			endTime := sch.EndTime
			if endTime == "" {
				endTime = MinutesToTime(TimeToMinutes(sch.StartTime) + item.Duration)
			}
			for _, d := range ExpandWeekday(sch.DayOfWeek, start, end) {
				stubs = append(stubs, SessionStub{
					ItemId:    item.ID,
					Date:      d.Format("2006-01-02"),
					StartTime: sch.StartTime,
					EndTime:   endTime,
				})
			}
		}
	}
	return stubs
}
