package handler

import (
	"errors"
	"fmt"
	"os"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetBookings lists bookings for the admin dashboard.
func GetBookings(c *fiber.Ctx) error {
	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	condition := db.Model(&model.Booking{})
	if filterInput.SessionId > 0 {
		condition = condition.Where("session_id = ?", filterInput.SessionId)
	}
	if filterInput.MembershipId > 0 {
		condition = condition.Where("membership_id = ?", filterInput.MembershipId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings model.Bookings
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.
		Preload("Session.Item").
		Preload("Membership.Member").
		Order("booked_at DESC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings":   bookings,
		"totalCount": totalCount,
	})
}

// CheckBookingEligibility runs the read-only evaluation for the logged-in
// member against one session. Ineligibility is a normal 200 answer; the
// storefront renders the reason.
func CheckBookingEligibility(c *fiber.Ctx) error {
	sessionId := c.Locals("inputId").(uint)

	claim, _ := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	db := database.DB
	var session model.ClassSession
	if err := db.Preload("Item").First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", helper.ErrSessionNotFound)
	}

	result, err := helper.CheckEligibility(db, claim.MemberId, session)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// CreateBooking reserves a spot for the logged-in member. On success the
// confirmation mail goes out with the check-in QR and the session's
// availability is broadcast to watching storefront clients.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("createBookingInput").(model.CreateBookingInput)

	claim, member := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	db := database.DB
	booking, err := helper.ReserveBooking(db, claim.MemberId, input.SessionId, input.MembershipId)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrSessionNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", err)
		case errors.Is(err, helper.ErrSessionNotBookable):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Session is not open for booking", err)
		case errors.Is(err, helper.ErrAlreadyBooked):
			return utils.ErrorResponse(c, fiber.StatusConflict, "You already booked this session", err)
		case errors.Is(err, helper.ErrSessionFull):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Session full", err)
		case errors.Is(err, helper.ErrQuotaExhausted):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Quota exhausted", err)
		case errors.Is(err, helper.ErrNotEligible):
			return utils.ErrorResponse(c, fiber.StatusForbidden, "No eligible membership for this session", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create booking", err)
		}
	}

	if err := db.Preload("Session.Item").Preload("Session.Teacher").First(booking, booking.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sendBookingConfirmation(member, booking)
	BroadcastSessionAvailability(booking.SessionId)

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// CancelBooking releases the member's booking and restores the exact quota
// unit it consumed.
func CancelBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(uint)

	claim, _ := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	booking, err := helper.ReleaseBooking(database.DB, claim.MemberId, bookingId)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrBookingNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
		case errors.Is(err, helper.ErrBookingNotOwned):
			return utils.ErrorResponse(c, fiber.StatusForbidden, "This booking is not yours", err)
		case errors.Is(err, helper.ErrBookingNotActive):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Booking cannot be cancelled", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot cancel booking", err)
		}
	}

	BroadcastSessionAvailability(booking.SessionId)
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// MyBookings lists the logged-in member's bookings, newest first.
func MyBookings(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	db := database.DB
	var bookings model.Bookings
	if err := db.
		Joins("JOIN memberships ON memberships.id = bookings.membership_id").
		Where("memberships.member_id = ?", claim.MemberId).
		Preload("Session.Item").
		Preload("Session.Teacher").
		Preload("Membership.Product").
		Order("booked_at DESC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// BookingQR renders the booking's check-in QR as a PNG.
func BookingQR(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(uint)

	claim, _ := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	db := database.DB
	var booking model.Booking
	if err := db.Preload("Membership").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", helper.ErrBookingNotFound)
	}
	if booking.Membership.MemberId != claim.MemberId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "This booking is not yours", helper.ErrBookingNotOwned)
	}

	png, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot render QR", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func sendBookingConfirmation(member model.Member, booking *model.Booking) {
	if member.Email == "" {
		return
	}

	teacherName := ""
	if booking.Session.Teacher != nil {
		teacherName = booking.Session.Teacher.FirstName + " " + booking.Session.Teacher.LastName
	}

	png, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		utils.Logger.Error().Err(err).Str("booking", booking.PublicCode).Msg("render booking QR")
		return
	}

	utils.SendBookingConfirmationEmail(member.Email, utils.BookingConfirmationData{
		BookingCode: booking.PublicCode,
		ClassName:   booking.Session.Item.Name,
		TeacherName: teacherName,
		Date:        booking.Session.Date.String(),
		StartTime:   booking.Session.StartTime,
		MemberName:  member.UserName,
		DetailLink:  fmt.Sprintf("%s/bookings/%d", os.Getenv("FRONTEND_URL"), booking.ID),
	}, png)
}
