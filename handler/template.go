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

// GetTemplates lists saved generation templates.
func GetTemplates(c *fiber.Ctx) error {
	filterInput := new(model.FilterTemplateInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	condition := db.Model(&model.Template{})
	if filterInput.Mode != "" {
		condition = condition.Where("mode = ?", filterInput.Mode)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	var templates model.Templates
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at DESC").Find(&templates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"templates":  templates,
		"totalCount": totalCount,
	})
}

func GetTemplateDetail(c *fiber.Ctx) error {
	template := c.Locals("template").(model.Template)
	return utils.SuccessResponse(c, fiber.StatusOK, template)
}

// CreateTemplate saves a generation recipe. Mode consistency (AUTOMATIC
// needs itemIds, MANUAL needs manualSessions) is checked by the validator
// chain; referenced items are verified here.
func CreateTemplate(c *fiber.Ctx) error {
	input := c.Locals("createTemplateInput").(model.CreateTemplateInput)

	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB

	referenced := input.ItemIds
	for _, ms := range input.ManualSessions {
		referenced = append(referenced, ms.ItemId)
	}
	for _, id := range referenced {
		var count int64
		db.Model(&model.Item{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown item in template", helper.ErrItemNotFound, "itemIds")
		}
	}

	template := model.Template{
		Name:           input.Name,
		Description:    input.Description,
		Mode:           input.Mode,
		ItemIds:        input.ItemIds,
		ManualSessions: input.ManualSessions,
		CreatedBy:      claim.AccountId,
	}
	if err := db.Create(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create template", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, template)
}

// UpdateTemplate replaces the template's recipe wholesale.
func UpdateTemplate(c *fiber.Ctx) error {
	template := c.Locals("template").(model.Template)
	input := c.Locals("createTemplateInput").(model.CreateTemplateInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	template.Name = input.Name
	template.Description = input.Description
	template.Mode = input.Mode
	template.ItemIds = input.ItemIds
	template.ManualSessions = input.ManualSessions

	if err := database.DB.Save(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update template", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, template)
}

// DeleteTemplates removes templates. Generated sessions are standalone
// rows, so deleting a template never touches them.
func DeleteTemplates(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	if err := database.DB.Delete(&model.Template{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete templates", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
