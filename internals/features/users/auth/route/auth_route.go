// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"clubsocios_backend/internals/configs"
	controller "clubsocios_backend/internals/features/users/auth/controller"
	rateLimiter "clubsocios_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts /auth. Login is public; /me goes through protect.
func AuthRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	authController := controller.NewAuthController(db)

	baseAuth := r.Group("/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	if configs.AuthHashEndpoint {
		baseAuth.Post("/generarPasswordHash", authController.GeneratePasswordHash)
	}
	baseAuth.Get("/me", protect, authController.Me)
}
