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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTeachers(c *fiber.Ctx) error {
	filterInput := new(model.FilterTeacher)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Teacher{})
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", key, key, key)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var teachers model.Teachers
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("last_name ASC").Find(&teachers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"teachers":   teachers,
		"totalCount": totalCount,
	})
}

func CreateTeacher(c *fiber.Ctx) error {
	input := c.Locals("createTeacherInput").(model.CreateTeacherInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	var teacher model.Teacher
	if err := copier.Copy(&teacher, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	teacher.IsActive = true

	if err := database.DB.Create(&teacher).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create teacher", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, teacher)
}

func UpdateTeacher(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("updateTeacherInput").(model.UpdateTeacherInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var teacher model.Teacher
	if err := db.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Teacher not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.PhoneNumber != nil {
		updates["phone_number"] = *input.PhoneNumber
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&teacher).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update teacher", err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, teacher)
}

// DeleteTeachers unassigns the teachers from their sessions, then removes
// them.
func DeleteTeachers(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ClassSession{}).
			Where("teacher_id IN ?", input.IDs).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Teacher{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete teachers", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
