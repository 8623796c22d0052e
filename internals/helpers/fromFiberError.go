package helper

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is installed as fiber.Config.ErrorHandler and is the single
// place where errors become HTTP responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Kind == KindInternal || ae.Status >= fiber.StatusInternalServerError {
			slog.ErrorContext(c.UserContext(), "request failed",
				"method", c.Method(), "path", c.OriginalURL(), "error", err, "reqid", c.Locals("reqid"))
		}
		if len(ae.Fields) > 0 {
			return JsonErrorWithFields(c, ae.Status, ae.Message, ae.Fields)
		}
		return JsonError(c, ae.Status, ae.Message)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(c, ve)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	slog.ErrorContext(c.UserContext(), "unhandled error",
		"method", c.Method(), "path", c.OriginalURL(), "error", err, "reqid", c.Locals("reqid"))
	return JsonError(c, fiber.StatusInternalServerError, "")
}
