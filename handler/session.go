package handler

import (
	"errors"
	"fmt"
	"time"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetSessions lists dated sessions with occupancy. Storefront callers only
// see SCHEDULED sessions of active items.
func GetSessions(c *fiber.Ctx) error {
	filterInput := new(model.FilterSessionInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)

	condition := db.Model(&model.ClassSession{})
	if !isAdmin && !isManager {
		condition = condition.Where("status = ?", model.SessionScheduled).
			Where("item_id IN (SELECT id FROM items WHERE is_active = true)")
	} else if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.ItemId > 0 {
		condition = condition.Where("item_id = ?", filterInput.ItemId)
	}
	if filterInput.TeacherId > 0 {
		condition = condition.Where("teacher_id = ?", filterInput.TeacherId)
	}
	if filterInput.StartDate != "" {
		condition = condition.Where("date >= ?", filterInput.StartDate)
	}
	if filterInput.EndDate != "" {
		condition = condition.Where("date <= ?", filterInput.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var sessions model.ClassSessions
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.
		Preload("Item").
		Preload("Teacher").
		Order("date ASC, start_time ASC").
		Find(&sessions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	responses := make([]model.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		booked := helper.CountConfirmedBookings(db, s.ID)
		responses = append(responses, model.SessionResponse{
			ClassSession: s,
			BookedCount:  booked,
			SpotsLeft:    int64(s.Item.Capacity) - booked,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sessions":   responses,
		"totalCount": totalCount,
	})
}

func GetSessionDetail(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	db := database.DB
	var session model.ClassSession
	if err := db.Preload("Item").Preload("Teacher").First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", helper.ErrSessionNotFound)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booked := helper.CountConfirmedBookings(db, session.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, model.SessionResponse{
		ClassSession: session,
		BookedCount:  booked,
		SpotsLeft:    int64(session.Item.Capacity) - booked,
	})
}

// CreateSession creates a single one-off session.
func CreateSession(c *fiber.Ctx) error {
	input := c.Locals("createSessionInput").(model.CreateSessionInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var item model.Item
	if err := db.First(&item, input.ItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Item not found", helper.ErrItemNotFound)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date", err, "date")
	}

	endTime := input.EndTime
	if endTime == "" {
		endTime = helper.MinutesToTime(helper.TimeToMinutes(input.StartTime) + item.Duration)
	}
	if err := helper.ValidateTimeRange(input.StartTime, endTime); err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid time range", err, "startTime")
	}

	session := model.ClassSession{
		PublicCode: newSessionCode(),
		ItemId:     item.ID,
		TeacherId:  input.TeacherId,
		Date:       utils.CustomDate{Time: date},
		StartTime:  input.StartTime,
		EndTime:    endTime,
		Status:     model.SessionScheduled,
		Notes:      input.Notes,
	}
	if err := db.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create session", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, session)
}

// GenerateSessions bulk-creates sessions from the weekly schedules of the
// selected items over a date range. No de-duplication: submitting the same
// range twice creates a second batch. The response reports what was
// created so the operator can review.
func GenerateSessions(c *fiber.Ctx) error {
	input := c.Locals("generateSessionsInput").(model.GenerateSessionsInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	start, end, err := helper.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date range", err, "startDate")
	}

	db := database.DB
	var items model.Items
	if err := db.Preload("Schedules").Where("id IN ?", input.ItemIds).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(items) != len(input.ItemIds) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown item in selection", helper.ErrItemNotFound, "itemIds")
	}

	stubs := helper.MaterializeFromSchedules(items, start, end)
	sessions, err := persistStubs(db, stubs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create sessions", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created":  len(sessions),
		"sessions": sessions,
	})
}

// GenerateFromTemplate applies a saved template over a date range.
// AUTOMATIC templates expand the current schedules of their items; MANUAL
// templates expand their own weekly stubs.
func GenerateFromTemplate(c *fiber.Ctx) error {
	input := c.Locals("generateFromTemplateInput").(model.GenerateFromTemplateInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var template model.Template
	if err := db.First(&template, input.TemplateId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Template not found", helper.ErrTemplateNotFound)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	start, end, err := helper.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date range", err, "startDate")
	}

	var stubs []helper.SessionStub
	switch template.Mode {
	case constants.TEMPLATE_AUTOMATIC:
		var items model.Items
		if err := db.Preload("Schedules").Where("id IN ?", template.ItemIds).Find(&items).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		stubs = helper.MaterializeFromSchedules(items, start, end)
	case constants.TEMPLATE_MANUAL:
		stubs = helper.ConvertTemplateSessionsToDates(template.ManualSessions, input.StartDate, input.EndDate)
		// Manual stubs carry no end time; borrow the item duration.
		durations := map[uint]int{}
		for i := range stubs {
			if stubs[i].EndTime != "" {
				continue
			}
			d, ok := durations[stubs[i].ItemId]
			if !ok {
				var item model.Item
				if err := db.First(&item, stubs[i].ItemId).Error; err != nil {
					return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown item in template", helper.ErrItemNotFound)
				}
				d = item.Duration
				durations[stubs[i].ItemId] = d
			}
			stubs[i].EndTime = helper.MinutesToTime(helper.TimeToMinutes(stubs[i].StartTime) + d)
		}
	}

	sessions, err := persistStubs(db, stubs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create sessions", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created":  len(sessions),
		"sessions": sessions,
	})
}

// BulkAssignTeacher sets one teacher on many sessions at once.
func BulkAssignTeacher(c *fiber.Ctx) error {
	input := c.Locals("bulkAssignTeacherInput").(model.BulkAssignTeacherInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var teacher model.Teacher
	if err := db.First(&teacher, input.TeacherId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Teacher not found", err, "teacherId")
	}

	result := db.Model(&model.ClassSession{}).
		Where("id IN ? AND status = ?", input.SessionIds, model.SessionScheduled).
		Update("teacher_id", input.TeacherId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot assign teacher", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"assigned": result.RowsAffected,
	})
}

// UpdateSession patches a single session. Cancelling via status keeps the
// row and its bookings for the record.
func UpdateSession(c *fiber.Ctx) error {
	sessionId := c.Locals("sessionId").(uint)
	input := c.Locals("updateSessionInput").(model.UpdateSessionInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var session model.ClassSession
	if err := db.Preload("Item").First(&session, sessionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", helper.ErrSessionNotFound)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.TeacherId != nil {
		updates["teacher_id"] = *input.TeacherId
	}
	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date", err, "date")
		}
		updates["date"] = date
	}

	startTime := session.StartTime
	if input.StartTime != nil {
		startTime = *input.StartTime
		updates["start_time"] = startTime
	}
	endTime := session.EndTime
	if input.EndTime != nil {
		endTime = *input.EndTime
		updates["end_time"] = endTime
	} else if input.StartTime != nil && endTime == "" {
		endTime = helper.MinutesToTime(helper.TimeToMinutes(startTime) + session.Item.Duration)
		updates["end_time"] = endTime
	}
	if input.StartTime != nil || input.EndTime != nil {
		if err := helper.ValidateTimeRange(startTime, endTime); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid time range", err, "startTime")
		}
	}

	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := db.Model(&session).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update session", err)
		}
	}

	if input.Status != nil {
		BroadcastSessionAvailability(session.ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

// CancelSession marks a session CANCELLED. Its bookings stay untouched;
// the front desk handles refunds case by case.
func CancelSession(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	result := db.Model(&model.ClassSession{}).
		Where("id = ? AND status = ?", id, model.SessionScheduled).
		Update("status", model.SessionCancelled)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Session is not in a cancellable state", helper.ErrSessionNotBookable)
	}

	BroadcastSessionAvailability(id)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "status": model.SessionCancelled})
}

// DeleteSessions removes sessions no non-cancelled booking references.
// Booked sessions are protected; cancel them instead. Cancelled booking
// rows go with their session.
func DeleteSessions(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var bookingCount int64
	db.Model(&model.Booking{}).
		Where("session_id IN ? AND status IN ?", input.IDs, helper.BookingStatusesBlockingDeletion).
		Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
			"Sessions with bookings cannot be deleted", helper.ErrSessionHasBookings, "ids")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Whatever remains is cancelled history; its FK would block the
		// delete otherwise.
		if err := tx.Where("session_id IN ?", input.IDs).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ClassSession{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete sessions", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// GetSessionRoster lists the session's bookings with member details, for
// the front desk.
func GetSessionRoster(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var session model.ClassSession
	if err := db.Preload("Item").Preload("Teacher").First(&session, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Session not found", helper.ErrSessionNotFound)
	}

	var bookings model.Bookings
	if err := db.
		Preload("Membership.Member").
		Preload("Membership.Product").
		Where("session_id = ?", id).
		Order("booked_at ASC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"session":  session,
		"bookings": bookings,
	})
}

// CheckInBooking marks a booking attended by its public code, scanned from
// the member's QR.
func CheckInBooking(c *fiber.Ctx) error {
	code := c.Params("code")

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var booking model.Booking
	if err := db.Preload("Session.Item").Preload("Membership.Member").
		Where("public_code = ?", code).
		First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", helper.ErrBookingNotFound)
	}
	if booking.Status != model.BookingConfirmed {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking is not confirmed", helper.ErrBookingNotActive)
	}

	now := time.Now()
	if err := db.Model(&booking).Updates(map[string]interface{}{
		"status":        model.BookingCompleted,
		"checked_in_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot check in booking", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func persistStubs(db *gorm.DB, stubs []helper.SessionStub) (model.ClassSessions, error) {
	sessions := make(model.ClassSessions, 0, len(stubs))
	if len(stubs) == 0 {
		return sessions, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stub := range stubs {
			date, err := time.Parse("2006-01-02", stub.Date)
			if err != nil {
				return err
			}
			session := model.ClassSession{
				PublicCode: newSessionCode(),
				ItemId:     stub.ItemId,
				TeacherId:  stub.TeacherId,
				Date:       utils.CustomDate{Time: date},
				StartTime:  stub.StartTime,
				EndTime:    stub.EndTime,
				Status:     model.SessionScheduled,
				Notes:      stub.Notes,
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}
			sessions = append(sessions, session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func newSessionCode() string {
	return fmt.Sprintf("CS-%s", utils.RandomString(8))
}
