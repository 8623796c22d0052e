package route

import (
	"clubsocios_backend/internals/features/club/socios/controller"
	helperOSS "clubsocios_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SocioRoutes(r fiber.Router, db *gorm.DB, blob helperOSS.BlobService, protect fiber.Handler) {
	ctl := controller.NewSocioController(db, blob)

	g := r.Group("/socios", protect)
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
