package handler

import (
	"errors"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMemberships lists sold memberships for the admin dashboard.
func GetMemberships(c *fiber.Ctx) error {
	filterInput := new(model.FilterMembershipInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	condition := db.Model(&model.Membership{})
	if filterInput.MemberId > 0 {
		condition = condition.Where("member_id = ?", filterInput.MemberId)
	}
	if filterInput.ProductId > 0 {
		condition = condition.Where("product_id = ?", filterInput.ProductId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var memberships model.Memberships
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.
		Preload("Member").
		Preload("Product").
		Preload("ItemUsages.ProductItem.Item").
		Preload("PoolUsages.QuotaPool").
		Order("created_at DESC").
		Find(&memberships).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"memberships": memberships,
		"totalCount":  totalCount,
	})
}

// SellMembership sells a plan to a member, snapshotting its quota counters.
func SellMembership(c *fiber.Ctx) error {
	input := c.Locals("sellMembershipInput").(model.SellMembershipInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var member model.Member
	if err := db.First(&member, input.MemberId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Member not found", err, "memberId")
	}

	membership, err := helper.SellMembership(db, input.MemberId, input.ProductId, input.StartDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot sell membership", err)
	}

	if err := db.
		Preload("Product").
		Preload("ItemUsages.ProductItem.Item").
		Preload("PoolUsages.QuotaPool").
		First(membership, membership.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, membership)
}

// UpdateMembershipStatus moves a membership between ACTIVE, FREEZED,
// EXPIRED and SUSPENDED. Non-active memberships cannot pay for bookings.
func UpdateMembershipStatus(c *fiber.Ctx) error {
	id := c.Locals("membershipId").(uint)
	input := c.Locals("updateMembershipStatusInput").(model.UpdateMembershipStatusInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var membership model.Membership
	if err := db.First(&membership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Membership not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&membership).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update membership", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, membership)
}

// MyMemberships returns the logged-in member's memberships with their
// remaining quota counters.
func MyMemberships(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	db := database.DB
	var memberships model.Memberships
	if err := db.
		Preload("Product").
		Preload("ItemUsages.ProductItem.Item").
		Preload("PoolUsages.QuotaPool").
		Where("member_id = ?", claim.MemberId).
		Order("expiry_date DESC").
		Find(&memberships).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, memberships)
}
