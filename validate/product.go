package validate

import (
	"strconv"

	"studio_manager/database"
	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return body[model.CreateProductInput]("createProductInput")
}

func UpdateProduct(key string) fiber.Handler {
	parse := body[model.UpdateProductInput]("updateProductInput")
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Product ID is invalid",
			})
		}
		c.Locals("productId", uint(id))
		return parse(c)
	}
}

func UpdateQuotaPool(key string) fiber.Handler {
	parse := body[model.UpdateQuotaPoolInput]("updateQuotaPoolInput")
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Quota pool ID is invalid",
			})
		}
		c.Locals("quotaPoolId", uint(id))
		return parse(c)
	}
}

func ValidProductId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Product ID is invalid",
			})
		}

		var product model.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product does not exist",
			})
		}

		c.Locals("productId", uint(id))

		return c.Next()
	}
}
