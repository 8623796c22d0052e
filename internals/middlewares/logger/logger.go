package logger

import (
	"clubsocios_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware writes one access line per request in club local time.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   dbtime.ClubLocation().String(),
		Format:     "[${time}] ${ip} ${locals:reqid} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
