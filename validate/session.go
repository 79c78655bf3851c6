package validate

import (
	"strconv"

	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateSession() fiber.Handler {
	return body[model.CreateSessionInput]("createSessionInput")
}

func UpdateSession(key string) fiber.Handler {
	parse := body[model.UpdateSessionInput]("updateSessionInput")
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Session ID is invalid",
			})
		}
		c.Locals("sessionId", uint(id))
		return parse(c)
	}
}

func GenerateSessions() fiber.Handler {
	return body[model.GenerateSessionsInput]("generateSessionsInput")
}

func GenerateFromTemplate() fiber.Handler {
	return body[model.GenerateFromTemplateInput]("generateFromTemplateInput")
}

func BulkAssignTeacher() fiber.Handler {
	return body[model.BulkAssignTeacherInput]("bulkAssignTeacherInput")
}
