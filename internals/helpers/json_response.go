// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

var errorCodes = map[int]string{
	fiber.StatusBadRequest:            "BAD_REQUEST",
	fiber.StatusUnauthorized:          "UNAUTHORIZED",
	fiber.StatusForbidden:             "FORBIDDEN",
	fiber.StatusNotFound:              "NOT_FOUND",
	fiber.StatusConflict:              "CONFLICT",
	fiber.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	fiber.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
	fiber.StatusServiceUnavailable:    "UNAVAILABLE",
}

func statusToErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}

// JsonError writes the error envelope. A 5xx without message gets the generic
// Spanish text so causes never reach the client.
func JsonError(c *fiber.Ctx, status int, message string) error {
	return JsonErrorWithFields(c, status, message, nil)
}

// JsonErrorWithFields adds per-field messages keyed by the json field name.
func JsonErrorWithFields(c *fiber.Ctx, status int, message string, fields map[string][]string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "error"
		if status >= fiber.StatusInternalServerError {
			message = "Error interno del servidor"
		}
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
		Errors:    fields,
	})
}

/* ===============================
   Success envelopes
=================================*/

func writeSuccess(c *fiber.Ctx, status int, message, fallback string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonPage writes a list page flat, the shape the dashboard tables read:
// {success, message, data, total, page, limit, totalPages}.
func JsonPage(c *fiber.Ctx, message string, data any, p Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"data":       data,
		"total":      p.Total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": p.TotalPages,
	})
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "ok", data)
}

// JsonCreated answers 201.
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusCreated, message, "created", data)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "updated", data)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, message, "deleted", data)
}
