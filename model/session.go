package model

import "studio_manager/utils"

const (
	SessionScheduled = "SCHEDULED"
	SessionCancelled = "CANCELLED"
	SessionCompleted = "COMPLETED"
)

// ClassSession is one concrete, dated occurrence of an Item.
type ClassSession struct {
	DTO
	PublicCode string           `gorm:"size:16;uniqueIndex" json:"publicCode"`
	ItemId     uint             `gorm:"not null;index" json:"itemId"`
	TeacherId  *uint            `json:"teacherId"`
	Date       utils.CustomDate `gorm:"type:date;not null;index" json:"date" validate:"required"`
	StartTime  string           `gorm:"size:5;not null" json:"startTime" validate:"required,timeslot"`
	EndTime    string           `gorm:"size:5" json:"endTime" validate:"omitempty,timeslot"`
	Status     string           `gorm:"size:12;not null;default:SCHEDULED" json:"status"`
	Notes      string           `gorm:"type:text" json:"notes"`

	Item    Item     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ItemId" json:"item"`
	Teacher *Teacher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:TeacherId" json:"teacher"`

	Bookings []Booking `gorm:"foreignKey:SessionId" json:"bookings,omitempty"`
}

type ClassSessions []ClassSession

type CreateSessionInput struct {
	ItemId    uint   `json:"itemId" validate:"required"`
	TeacherId *uint  `json:"teacherId"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime string `json:"startTime" validate:"required,timeslot"`
	EndTime   string `json:"endTime" validate:"omitempty,timeslot"`
	Notes     string `json:"notes"`
}

type UpdateSessionInput struct {
	TeacherId *uint   `json:"teacherId"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime" validate:"omitempty,timeslot"`
	EndTime   *string `json:"endTime" validate:"omitempty,timeslot"`
	Status    *string `json:"status" validate:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
	Notes     *string `json:"notes"`
}

// GenerateSessionsInput drives the automatic bulk generator: every active
// schedule of every selected item is expanded over [StartDate, EndDate].
type GenerateSessionsInput struct {
	ItemIds   []uint `json:"itemIds" validate:"required,min=1,dive,required"`
	StartDate string `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" validate:"required"`
}

// GenerateFromTemplateInput applies a saved template over a date range.
type GenerateFromTemplateInput struct {
	TemplateId uint   `json:"templateId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
}

type BulkAssignTeacherInput struct {
	SessionIds []uint `json:"sessionIds" validate:"required,min=1,dive,required"`
	TeacherId  uint   `json:"teacherId" validate:"required"`
}

type FilterSessionInput struct {
	Pagination
	ItemId    uint   `query:"itemId" validate:"omitempty,gt=0"`
	TeacherId uint   `query:"teacherId" validate:"omitempty,gt=0"`
	Status    string `query:"status" validate:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SessionResponse is the list read model with occupancy attached.
type SessionResponse struct {
	ClassSession
	BookedCount int64 `json:"bookedCount"`
	SpotsLeft   int64 `json:"spotsLeft"`
}
