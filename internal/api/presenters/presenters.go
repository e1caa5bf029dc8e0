package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ValidationErrorResponse sends the flat field -> message map as the 400 body.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fields)
}

// ErrorResponse logs the underlying cause server-side and returns only the
// generic message to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func SuccessResponse(c *fiber.Ctx, status int, body interface{}) error {
	return c.Status(status).JSON(body)
}
