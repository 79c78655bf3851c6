package helper

import "errors"

// Sentinel errors surfaced by the scheduling and booking helpers. Handlers
// map these onto HTTP statuses; ineligibility outcomes are values, not
// errors (see EligibilityResult).
var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrScheduleOverlap  = errors.New("schedule overlaps an existing active schedule for this day")
	ErrEmptyDateRange   = errors.New("startDate and endDate are required")

	ErrItemNotFound     = errors.New("item not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrBookingNotFound  = errors.New("booking not found")

	ErrItemReferenced     = errors.New("item is referenced by products or booked sessions")
	ErrQuotaPoolInUse     = errors.New("quota pool already has usage records")
	ErrSessionHasBookings = errors.New("session has non-cancelled bookings")

	ErrSessionNotBookable = errors.New("session is not open for booking")
	ErrSessionFull        = errors.New("session is fully booked")
	ErrAlreadyBooked      = errors.New("member already booked this session")
	ErrQuotaExhausted     = errors.New("membership quota exhausted")
	ErrNotEligible        = errors.New("no eligible membership for this class")
	ErrBookingNotOwned    = errors.New("booking does not belong to this member")
	ErrBookingNotActive   = errors.New("booking is not in a cancellable state")
)
