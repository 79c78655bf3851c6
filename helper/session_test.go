package helper

import (
	"testing"

	"studio_manager/model"
	"studio_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yogaItem() model.Item {
	return model.Item{
		DTO:      model.DTO{ID: 1},
		Name:     "Yoga",
		Duration: 60,
		Capacity: 10,
		Schedules: []model.ItemSchedule{
			{ItemId: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", IsActive: true},
		},
	}
}

func TestMaterializeFromSchedules(t *testing.T) {
	// Three Mondays between 2024-01-01 and 2024-01-15.
	stubs := MaterializeFromSchedules([]model.Item{yogaItem()}, date("2024-01-01"), date("2024-01-15"))

	require.Len(t, stubs, 3)
	assert.Equal(t, "2024-01-01", stubs[0].Date)
	assert.Equal(t, "2024-01-08", stubs[1].Date)
	assert.Equal(t, "2024-01-15", stubs[2].Date)
	for _, s := range stubs {
		assert.Equal(t, uint(1), s.ItemId)
		assert.Equal(t, "09:00", s.StartTime)
		assert.Equal(t, "10:00", s.EndTime)
		assert.Nil(t, s.TeacherId)
	}
}

func TestMaterializeFromSchedulesDefaultsEndTime(t *testing.T) {
	pilates := model.Item{
		DTO:      model.DTO{ID: 2},
		Name:     "Pilates",
		Duration: 45,
		Schedules: []model.ItemSchedule{
			{ItemId: 2, DayOfWeek: 3, StartTime: "18:00", IsActive: true},
		},
	}

	// Four Wednesdays in March 2024: the 6th, 13th, 20th and 27th.
	stubs := MaterializeFromSchedules([]model.Item{pilates}, date("2024-03-01"), date("2024-03-31"))

	require.Len(t, stubs, 4)
	for _, s := range stubs {
		assert.Equal(t, "18:00", s.StartTime)
		assert.Equal(t, "18:45", s.EndTime)
	}
}

func TestMaterializeFromSchedulesSkipsInactive(t *testing.T) {
	item := yogaItem()
	item.Schedules[0].IsActive = false

	stubs := MaterializeFromSchedules([]model.Item{item}, date("2024-01-01"), date("2024-01-15"))
	assert.Empty(t, stubs)
}

func TestMaterializeFromSchedulesIsDeterministic(t *testing.T) {
	// The materializer never de-duplicates: each call yields the same
	// batch, and persisting twice is the caller's decision.
	a := MaterializeFromSchedules([]model.Item{yogaItem()}, date("2024-01-01"), date("2024-01-15"))
	b := MaterializeFromSchedules([]model.Item{yogaItem()}, date("2024-01-01"), date("2024-01-15"))
	assert.Equal(t, a, b)
}

func TestConvertTemplateSessionsToDates(t *testing.T) {
	manual := []model.ManualSession{
		{ItemId: 1, DayOfWeek: 1, StartTime: "09:00", Notes: "bring mats"},
		{ItemId: 2, TeacherId: utils.Ptr(uint(7)), DayOfWeek: 1, StartTime: "17:00"},
	}

	stubs := ConvertTemplateSessionsToDates(manual, "2024-01-01", "2024-01-08")

	// Two stubs, two Mondays each.
	require.Len(t, stubs, 4)
	assert.Equal(t, uint(1), stubs[0].ItemId)
	assert.Equal(t, "2024-01-01", stubs[0].Date)
	assert.Equal(t, "bring mats", stubs[0].Notes)
	assert.Equal(t, uint(2), stubs[2].ItemId)
	require.NotNil(t, stubs[2].TeacherId)
	assert.Equal(t, uint(7), *stubs[2].TeacherId)
}

func TestConvertTemplateSessionsToDatesDefensiveEmpty(t *testing.T) {
	manual := []model.ManualSession{{ItemId: 1, DayOfWeek: 1, StartTime: "09:00"}}

	assert.Empty(t, ConvertTemplateSessionsToDates(nil, "2024-01-01", "2024-01-31"))
	assert.Empty(t, ConvertTemplateSessionsToDates(manual, "", "2024-01-31"))
	assert.Empty(t, ConvertTemplateSessionsToDates(manual, "2024-01-01", ""))
	assert.Empty(t, ConvertTemplateSessionsToDates(manual, "not-a-date", "2024-01-31"))
	assert.Empty(t, ConvertTemplateSessionsToDates(manual, "2024-02-01", "2024-01-01"))
}
