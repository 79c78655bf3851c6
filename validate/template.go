package validate

import (
	"errors"
	"strconv"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTemplate() fiber.Handler {
	return body[model.CreateTemplateInput]("createTemplateInput")
}

// CheckTemplateMode enforces the mode/payload pairing after body parsing:
// AUTOMATIC carries item ids, MANUAL carries session stubs.
func CheckTemplateMode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("createTemplateInput").(model.CreateTemplateInput)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing template input"))
		}
		switch input.Mode {
		case constants.TEMPLATE_AUTOMATIC:
			if len(input.ItemIds) == 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
					"AUTOMATIC templates need at least one item", nil, "itemIds")
			}
		case constants.TEMPLATE_MANUAL:
			if len(input.ManualSessions) == 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
					"MANUAL templates need at least one session stub", nil, "manualSessions")
			}
		}
		return c.Next()
	}
}

func ValidTemplateId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Template ID is invalid",
			})
		}

		var template model.Template
		if err := database.DB.First(&template, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Template does not exist",
			})
		}

		c.Locals("templateId", uint(id))
		c.Locals("template", template)

		return c.Next()
	}
}
