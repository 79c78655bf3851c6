package helper

import (
	"errors"
	"time"

	"studio_manager/constants"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingStatusesBlockingDeletion lists the booking statuses that pin
// their session, and transitively its item, against hard deletion.
// Cancelled rows are history only and never block.
var BookingStatusesBlockingDeletion = []string{
	model.BookingConfirmed,
	model.BookingCompleted,
	model.BookingNoShow,
	model.BookingWaitlisted,
}

// CountConfirmedBookings returns the number of bookings occupying a spot in
// the session. Cancelled and waitlisted rows do not hold a spot.
func CountConfirmedBookings(db *gorm.DB, sessionId uint) int64 {
	var count int64
	db.Model(&model.Booking{}).
		Where("session_id = ? AND status IN ?", sessionId,
			[]string{model.BookingConfirmed, model.BookingCompleted, model.BookingNoShow}).
		Count(&count)
	return count
}

// HasMemberBooking reports whether the member already holds a non-cancelled
// booking for the session, through any of their memberships.
func HasMemberBooking(db *gorm.DB, memberId, sessionId uint) bool {
	var count int64
	db.Model(&model.Booking{}).
		Joins("JOIN memberships ON memberships.id = bookings.membership_id").
		Where("memberships.member_id = ? AND bookings.session_id = ? AND bookings.status != ?",
			memberId, sessionId, model.BookingCancelled).
		Count(&count)
	return count > 0
}

// BuildMembershipQuotas flattens the member's memberships against one item
// into the views the evaluator consumes: product coverage, quota type and
// the current remaining counter.
func BuildMembershipQuotas(db *gorm.DB, memberId, itemId uint) ([]MembershipQuota, error) {
	var memberships []model.Membership
	if err := db.
		Preload("Product").
		Preload("ItemUsages.ProductItem").
		Preload("PoolUsages").
		Where("member_id = ?", memberId).
		Order("expiry_date ASC").
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	quotas := make([]MembershipQuota, 0, len(memberships))
	for _, m := range memberships {
		mq := MembershipQuota{
			MembershipId: m.ID,
			ProductName:  m.Product.Name,
			Status:       m.Status,
			ExpiryDate:   m.ExpiryDate.Time,
		}

		var productItem *model.ProductItem
		for i := range m.ItemUsages {
			if m.ItemUsages[i].ProductItem.ItemId == itemId {
				productItem = &m.ItemUsages[i].ProductItem
				mq.Remaining = m.ItemUsages[i].Remaining
				break
			}
		}
		if productItem == nil {
			// FREE entries carry no usage counter, look them up directly.
			var pi model.ProductItem
			err := db.Where("product_id = ? AND item_id = ?", m.ProductId, itemId).First(&pi).Error
			if err == nil {
				productItem = &pi
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		if productItem == nil {
			quotas = append(quotas, mq)
			continue
		}

		mq.Covered = true
		mq.QuotaType = productItem.QuotaType
		mq.ProductItemId = productItem.ID
		mq.QuotaPoolId = productItem.QuotaPoolId

		if productItem.QuotaType == constants.QUOTA_SHARED && productItem.QuotaPoolId != nil {
			for _, pu := range m.PoolUsages {
				if pu.QuotaPoolId == *productItem.QuotaPoolId {
					mq.Remaining = pu.Remaining
					break
				}
			}
		}
		quotas = append(quotas, mq)
	}
	return quotas, nil
}

// CheckEligibility runs the read-only evaluation for a member and session.
func CheckEligibility(db *gorm.DB, memberId uint, session model.ClassSession) (EligibilityResult, error) {
	if session.Status != model.SessionScheduled {
		return EligibilityResult{Reason: "session is not open for booking"}, nil
	}
	quotas, err := BuildMembershipQuotas(db, memberId, session.ItemId)
	if err != nil {
		return EligibilityResult{}, err
	}
	occ := SessionOccupancy{
		Capacity: session.Item.Capacity,
		Booked:   CountConfirmedBookings(db, session.ID),
	}
	return EvaluateEligibility(HasMemberBooking(db, memberId, session.ID), occ, quotas, time.Now()), nil
}

// ReserveBooking books a spot atomically: capacity re-check, quota check,
// quota decrement and booking insert run in one transaction with the
// session and usage rows locked, so two concurrent attempts cannot both
// pass the read-only evaluation and oversell.
func ReserveBooking(db *gorm.DB, memberId, sessionId uint, membershipId *uint) (*model.Booking, error) {
	var booking *model.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		var session model.ClassSession
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Item").
			First(&session, sessionId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if session.Status != model.SessionScheduled {
			return ErrSessionNotBookable
		}
		if HasMemberBooking(tx, memberId, sessionId) {
			return ErrAlreadyBooked
		}
		booked := CountConfirmedBookings(tx, sessionId)
		if booked >= int64(session.Item.Capacity) {
			return ErrSessionFull
		}

		quotas, err := BuildMembershipQuotas(tx, memberId, session.ItemId)
		if err != nil {
			return err
		}
		result := EvaluateEligibility(false, SessionOccupancy{Capacity: session.Item.Capacity, Booked: booked}, quotas, time.Now())
		if !result.CanJoin {
			if result.Reason == "quota exhausted" {
				return ErrQuotaExhausted
			}
			return ErrNotEligible
		}

		chosen := result.EligibleMemberships[0]
		if membershipId != nil {
			found := false
			for _, em := range result.EligibleMemberships {
				if em.MembershipId == *membershipId {
					chosen = em
					found = true
					break
				}
			}
			if !found {
				return ErrNotEligible
			}
		}

		var quota MembershipQuota
		for _, mq := range quotas {
			if mq.MembershipId == chosen.MembershipId {
				quota = mq
				break
			}
		}

		newBooking := model.Booking{
			PublicCode:   "BK-" + uuid.New().String()[:8],
			MembershipId: chosen.MembershipId,
			SessionId:    sessionId,
			Status:       model.BookingConfirmed,
			BookedAt:     time.Now(),
		}

		// Decrement the counter the booking consumes, under a row lock.
		switch quota.QuotaType {
		case constants.QUOTA_INDIVIDUAL:
			var usage model.MembershipItemUsage
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("membership_id = ? AND product_item_id = ?", chosen.MembershipId, quota.ProductItemId).
				First(&usage).Error; err != nil {
				return err
			}
			if usage.Remaining <= 0 {
				return ErrQuotaExhausted
			}
			if err := tx.Model(&usage).Update("remaining", usage.Remaining-1).Error; err != nil {
				return err
			}
			newBooking.ConsumedProductItemId = utils.Ptr(quota.ProductItemId)
		case constants.QUOTA_SHARED:
			var usage model.MembershipPoolUsage
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("membership_id = ? AND quota_pool_id = ?", chosen.MembershipId, *quota.QuotaPoolId).
				First(&usage).Error; err != nil {
				return err
			}
			if usage.Remaining <= 0 {
				return ErrQuotaExhausted
			}
			if err := tx.Model(&usage).Update("remaining", usage.Remaining-1).Error; err != nil {
				return err
			}
			newBooking.ConsumedQuotaPoolId = quota.QuotaPoolId
		}

		if err := tx.Create(&newBooking).Error; err != nil {
			return err
		}
		booking = &newBooking
		return nil
	})

	return booking, err
}

// ReleaseBooking cancels a confirmed booking and restores the exact quota
// unit it consumed, in one transaction.
func ReleaseBooking(db *gorm.DB, memberId uint, bookingId uint) (*model.Booking, error) {
	var booking model.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Membership").
			First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Membership.MemberId != memberId {
			return ErrBookingNotOwned
		}
		if booking.Status != model.BookingConfirmed && booking.Status != model.BookingWaitlisted {
			return ErrBookingNotActive
		}

		now := time.Now()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":       model.BookingCancelled,
			"cancelled_at": now,
		}).Error; err != nil {
			return err
		}

		if booking.ConsumedProductItemId != nil {
			return tx.Model(&model.MembershipItemUsage{}).
				Where("membership_id = ? AND product_item_id = ?", booking.MembershipId, *booking.ConsumedProductItemId).
				Update("remaining", gorm.Expr("remaining + 1")).Error
		}
		if booking.ConsumedQuotaPoolId != nil {
			return tx.Model(&model.MembershipPoolUsage{}).
				Where("membership_id = ? AND quota_pool_id = ?", booking.MembershipId, *booking.ConsumedQuotaPoolId).
				Update("remaining", gorm.Expr("remaining + 1")).Error
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &booking, nil
}
