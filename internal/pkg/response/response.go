package response

import "github.com/gofiber/fiber/v2"

// ErrorBody is the JSON body of every error response.
// The original client reads the message field, so the shape is fixed.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON sends a 200 response with the payload as-is
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 response with the payload as-is
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
