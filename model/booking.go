package model

import "time"

const (
	BookingConfirmed  = "CONFIRMED"
	BookingCancelled  = "CANCELLED"
	BookingCompleted  = "COMPLETED"
	BookingNoShow     = "NO_SHOW"
	BookingWaitlisted = "WAITLISTED"
)

// Booking links a Membership to a ClassSession. The consumed counter is
// recorded on the row so cancellation restores exactly the unit that was
// taken.
type Booking struct {
	DTO
	PublicCode   string `gorm:"size:20;uniqueIndex" json:"publicCode"`
	MembershipId uint   `gorm:"not null;index" json:"membershipId"`
	SessionId    uint   `gorm:"not null;index" json:"sessionId"`
	Status       string `gorm:"size:12;not null;default:CONFIRMED" json:"status"`

	ConsumedProductItemId *uint `json:"consumedProductItemId"`
	ConsumedQuotaPoolId   *uint `json:"consumedQuotaPoolId"`

	BookedAt    time.Time  `json:"bookedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
	CheckedInAt *time.Time `json:"checkedInAt"`

	Membership Membership   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:MembershipId" json:"membership"`
	Session    ClassSession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:SessionId" json:"session"`
}

type Bookings []Booking

type CreateBookingInput struct {
	SessionId uint `json:"sessionId" validate:"required"`
	// MembershipId selects which eligible membership pays for the spot;
	// when absent the first eligible one is used.
	MembershipId *uint `json:"membershipId"`
}

type FilterBookingInput struct {
	Pagination
	SessionId    uint   `query:"sessionId" validate:"omitempty,gt=0"`
	MembershipId uint   `query:"membershipId" validate:"omitempty,gt=0"`
	Status       string `query:"status" validate:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED NO_SHOW WAITLISTED"`
}
