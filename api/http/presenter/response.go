package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// ResultResponse is the submit-endpoint envelope: success plus an optional
// error payload (a string or a structured field-error list).
type ResultResponse struct {
	Success bool `json:"success"`
	Error   any  `json:"error,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Success(c *fiber.Ctx) error {
	return JSON(c, fiber.StatusOK, ResultResponse{Success: true})
}

func Failure(c *fiber.Ctx, status int, detail any) error {
	return JSON(c, status, ResultResponse{Success: false, Error: detail})
}
