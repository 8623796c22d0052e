package middlewares

import (
	"time"

	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter covers every /api endpoint.
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(300, 1*time.Minute, "Demasiadas solicitudes. Intente nuevamente más tarde.")
}

// LoginRateLimiter is stricter, per IP.
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, 1*time.Minute, "Demasiados intentos de inicio de sesión. Espere un momento.")
}
