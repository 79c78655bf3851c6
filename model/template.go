package model

// ManualSession is one stub of a MANUAL template: a weekly pattern entry
// that gets expanded to dated sessions over an arbitrary range.
type ManualSession struct {
	ItemId    uint   `json:"itemId" validate:"required"`
	TeacherId *uint  `json:"teacherId"`
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,timeslot"`
	Notes     string `json:"notes"`
}

// Template is a saved, reusable bulk-generation recipe, independent of any
// date range. AUTOMATIC templates expand the schedules of ItemIds; MANUAL
// templates expand their own ManualSessions.
type Template struct {
	DTO

	Name        string `gorm:"size:100;not null" json:"name" validate:"required,min=3,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Mode        string `gorm:"size:10;not null" json:"mode" validate:"required,oneof=AUTOMATIC MANUAL"`

	ItemIds        []uint          `gorm:"type:json;serializer:json" json:"itemIds"`
	ManualSessions []ManualSession `gorm:"type:json;serializer:json" json:"manualSessions"`

	CreatedBy uint `gorm:"not null" json:"createdBy"`
}

type Templates []Template

type CreateTemplateInput struct {
	Name           string          `json:"name" validate:"required,min=3,max=100"`
	Description    string          `json:"description"`
	Mode           string          `json:"mode" validate:"required,oneof=AUTOMATIC MANUAL"`
	ItemIds        []uint          `json:"itemIds" validate:"omitempty,dive,required"`
	ManualSessions []ManualSession `json:"manualSessions" validate:"omitempty,dive"`
}

type FilterTemplateInput struct {
	Pagination
	Mode      string `query:"mode" validate:"omitempty,oneof=AUTOMATIC MANUAL"`
	SearchKey string `query:"searchKey"`
}
