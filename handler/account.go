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
	"gorm.io/gorm"
)

func GetAccounts(c *fiber.Ctx) error {
	filterInput := new(model.FilterAccount)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	condition := db.Model(&model.Account{})
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", *filterInput.Active)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", *filterInput.Role)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	var accounts model.Accounts
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("username ASC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accounts":   accounts,
		"totalCount": totalCount,
	})
}

func CreateAccount(c *fiber.Ctx) error {
	input := c.Locals("createAccountInput").(model.CreateAccountInput)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	existing, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Username is taken", nil, "username")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hash password", err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Role:     input.Role,
		Active:   true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create account", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

// ActiveAccount toggles a staff account on or off.
func ActiveAccount(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	claim, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}
	if claim.AccountId == id {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot deactivate your own account", nil)
	}

	var input model.ActiveAccountInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var account model.Account
	if err := db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&account).Update("active", input.Active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update account", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

// AdminChangePassword resets another staff account's password.
func AdminChangePassword(c *fiber.Ctx) error {
	input := c.Locals("adminChangePasswordInput").(model.AdminChangePassword)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}
	if input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", nil, "repeatPassword")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot hash password", err)
	}

	result := database.DB.Model(&model.Account{}).
		Where("id = ?", input.AccountId).
		Update("password", hash)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update password", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
