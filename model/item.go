package model

// Item is a bookable class type (not a single occurrence).
type Item struct {
	DTO
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Slug        string `gorm:"size:120;uniqueIndex" json:"slug"`
	Duration    int    `gorm:"not null" json:"duration" validate:"required,min=15,max=240"`
	Capacity    int    `gorm:"not null;default:1;check:capacity >= 1" json:"capacity" validate:"required,min=1"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
	Color       string `gorm:"size:20" json:"color"`
	ImageUrl    string `json:"imageUrl"`
	Description string `gorm:"type:text" json:"description"`

	Schedules []ItemSchedule `gorm:"foreignKey:ItemId;constraint:OnDelete:CASCADE" json:"schedules"`
}

type Items []Item

// ItemSchedule is a recurring weekly slot owned by an Item.
// DayOfWeek follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
type ItemSchedule struct {
	DTO
	ItemId    uint   `gorm:"not null;index" json:"itemId"`
	DayOfWeek int    `gorm:"not null;check:day_of_week >= 0 AND day_of_week <= 6" json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `gorm:"size:5;not null" json:"startTime" validate:"required,timeslot"`
	EndTime   string `gorm:"size:5" json:"endTime" validate:"omitempty,timeslot"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
}

type ScheduleInput struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,timeslot"`
	EndTime   string `json:"endTime" validate:"omitempty,timeslot"`
	IsActive  *bool  `json:"isActive"`
}

type CreateItemInput struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Duration    int             `json:"duration" validate:"required,min=15,max=240"`
	Capacity    int             `json:"capacity" validate:"required,min=1"`
	Color       string          `json:"color"`
	Description string          `json:"description"`
	Schedules   []ScheduleInput `json:"schedules" validate:"omitempty,dive"`
}

type UpdateItemInput struct {
	Name        *string         `json:"name" validate:"omitempty,min=2,max=100"`
	Duration    *int            `json:"duration" validate:"omitempty,min=15,max=240"`
	Capacity    *int            `json:"capacity" validate:"omitempty,min=1"`
	IsActive    *bool           `json:"isActive"`
	Color       *string         `json:"color"`
	Description *string         `json:"description"`
	Schedules   []ScheduleInput `json:"schedules" validate:"omitempty,dive"`
}

type FilterItemInput struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Active    *bool  `query:"active"`
	DayOfWeek *int   `query:"dayOfWeek" validate:"omitempty,min=0,max=6"`
}

// ItemResponse is the list read model with related-row counts attached.
type ItemResponse struct {
	Item
	ScheduleCount int64 `json:"scheduleCount"`
	SessionCount  int64 `json:"sessionCount"`
	ProductCount  int64 `json:"productCount"`
}
