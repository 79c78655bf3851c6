package validate

import (
	"studio_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return body[model.CreateBookingInput]("createBookingInput")
}
