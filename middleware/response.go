package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the {error} body used by every failure path.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
