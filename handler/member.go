package handler

import (
	"errors"
	"strings"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMembers lists members for the admin dashboard.
func GetMembers(c *fiber.Ctx) error {
	filterInput := new(model.FilterMember)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	condition := db.Model(&model.Member{})
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}
	if filterInput.Phone != "" {
		condition = condition.Where("phone LIKE ?", "%"+filterInput.Phone+"%")
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var members model.Members
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Preload("Memberships.Product").Order("created_at DESC").Find(&members).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"members":    members,
		"totalCount": totalCount,
	})
}

// GetMemberDetail returns one member with memberships and usage counters,
// for the admin dashboard.
func GetMemberDetail(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var member model.Member
	if err := db.
		Preload("Memberships.Product").
		Preload("Memberships.ItemUsages.ProductItem.Item").
		Preload("Memberships.PoolUsages.QuotaPool").
		First(&member, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Member not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

// MyProfile returns the logged-in member's own record.
func MyProfile(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

// EditMyProfile patches the logged-in member's own record.
func EditMyProfile(c *fiber.Ctx) error {
	claim, member := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}

	var input model.EditMemberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.AvatarUrl != nil {
		updates["avatar_url"] = *input.AvatarUrl
	}

	db := database.DB
	if len(updates) > 0 {
		if err := db.Model(&member).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update profile", err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, member)
}

// MemberChangePassword lets the logged-in member rotate their password.
func MemberChangePassword(c *fiber.Ctx) error {
	input := c.Locals("memberChangePasswordInput").(model.MemberChangePassword)

	claim, member := helper.GetInfoMemberFromToken(c)
	if claim.MemberId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Member login required", nil)
	}
	if input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "repeatPassword")
	}
	if !helper.CheckPasswordHash(input.CurrentPassword, member.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Current password is wrong", nil, "currentPassword")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hash password", err)
	}
	if err := database.DB.Model(&member).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update password", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}

// ActiveMember toggles a member account on or off (admin).
func ActiveMember(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	var input model.ActiveAccountInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	result := database.DB.Model(&model.Member{}).Where("id = ?", id).Update("is_active", input.Active)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Member not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id, "active": input.Active})
}
