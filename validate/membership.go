package validate

import (
	"strconv"

	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func SellMembership() fiber.Handler {
	return body[model.SellMembershipInput]("sellMembershipInput")
}

func UpdateMembershipStatus(key string) fiber.Handler {
	parse := body[model.UpdateMembershipStatusInput]("updateMembershipStatusInput")
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Membership ID is invalid",
			})
		}
		c.Locals("membershipId", uint(id))
		return parse(c)
	}
}
