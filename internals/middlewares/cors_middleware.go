// middlewares/cors.go

package middlewares

import (
	"strings"

	"clubsocios_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the dashboard and gate app origins from CORS_ORIGINS.
// Credentials are only allowed with an explicit origin list.
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.CorsOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: origins != "*",
	})
}
