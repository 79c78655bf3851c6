package validate

import (
	"strconv"

	"studio_manager/database"
	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateItem() fiber.Handler {
	return body[model.CreateItemInput]("createItemInput")
}

func UpdateItem(key string) fiber.Handler {
	parse := body[model.UpdateItemInput]("updateItemInput")
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Item ID is invalid",
			})
		}
		c.Locals("itemId", uint(id))
		return parse(c)
	}
}

// ValidItemId checks the path id against the database before the handler
// runs.
func ValidItemId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idParam := c.Params(key)
		id, err := strconv.Atoi(idParam)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Item ID is invalid",
			})
		}

		var item model.Item
		if err := database.DB.Preload("Schedules").First(&item, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item does not exist",
			})
		}

		c.Locals("itemId", uint(id))
		c.Locals("item", item)

		return c.Next()
	}
}
