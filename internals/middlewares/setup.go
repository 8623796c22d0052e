package middlewares

import (
	"context"
	"time"

	"clubsocios_backend/internals/configs"
	"clubsocios_backend/internals/middlewares/logger"
	"clubsocios_backend/internals/middlewares/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
)

const LocRequestID = "reqid"

// RequestContext tags the request with an id and bounds its user context,
// in line with the database statement_timeout.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals(LocRequestID, id)

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// SetupMiddlewares installs the app-wide chain. Order matters: recovery
// first so panics in later handlers still reach the error handler.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(configs.GetEnvDuration("REQUEST_TIMEOUT", 10*time.Second)))
	app.Use(metrics.Middleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
