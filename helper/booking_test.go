package helper

import (
	"testing"

	"studio_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusesBlockingDeletion(t *testing.T) {
	// Cancelled bookings are history and never pin a session or item
	// against deletion; every status that held or holds a spot does.
	assert.NotContains(t, BookingStatusesBlockingDeletion, model.BookingCancelled)

	assert.Contains(t, BookingStatusesBlockingDeletion, model.BookingConfirmed)
	assert.Contains(t, BookingStatusesBlockingDeletion, model.BookingCompleted)
	assert.Contains(t, BookingStatusesBlockingDeletion, model.BookingNoShow)
	assert.Contains(t, BookingStatusesBlockingDeletion, model.BookingWaitlisted)
}
