package routes

import (
	"log/slog"

	"clubsocios_backend/internals/configs"
	helperOSS "clubsocios_backend/internals/helpers/oss"
	"clubsocios_backend/internals/middlewares"
	authMiddleware "clubsocios_backend/internals/middlewares/auth"
	routeDetails "clubsocios_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts health, metrics and the /api tree. A nil blob disables
// photo uploads.
func SetupRoutes(app *fiber.App, db *gorm.DB, blob helperOSS.BlobService) {
	BaseRoutes(app, db)

	prefix := configs.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := app.Group(prefix, middlewares.GlobalRateLimiter())
	protect := authMiddleware.AuthMiddleware(db)

	slog.Info("mounting routes", "prefix", prefix)
	routeDetails.AuthRoutes(api, db, protect)
	routeDetails.ClubRoutes(api, db, blob, protect)
}
