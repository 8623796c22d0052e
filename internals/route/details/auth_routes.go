package details

import (
	authRoute "clubsocios_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	authRoute.AuthRoutes(api, db, protect)
}
