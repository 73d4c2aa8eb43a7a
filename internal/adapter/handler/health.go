package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Ping reports the server time so callers can verify the service is up.
// GET /ping
func Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"serverTime": time.Now().UTC().Format(time.RFC3339),
	})
}
