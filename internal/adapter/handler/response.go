package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Message: message, Code: strconv.Itoa(status)})
}

func badRequest(c *fiber.Ctx, message string) error {
	return errorJSON(c, fiber.StatusBadRequest, message)
}

// internalError hides the underlying failure from the caller.
func internalError(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusInternalServerError, "internal server error")
}
