package middleware

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/contentiq/internal/logger"
)

var validate = validator.New()

// ParseAndValidate fills dest from the request body and runs struct
// validation, writing the error response itself on failure. Returns
// false when the handler should stop.
func ParseAndValidate(c *fiber.Ctx, dest interface{}) bool {
	if err := c.BodyParser(dest); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"msg":   err.Error(),
		})
		return false
	}

	if err := validate.Struct(dest); err != nil {
		fields := make(map[string]string)
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
		return false
	}

	return true
}

// ErrorHandler is the app-level fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
