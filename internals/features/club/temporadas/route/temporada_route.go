package route

import (
	"clubsocios_backend/internals/features/club/temporadas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TemporadaRoutes returns the /temporadas group so season-scoped member
// routes can hang off it behind the same auth handler.
func TemporadaRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) fiber.Router {
	ctl := controller.NewTemporadaController(db)

	g := r.Group("/temporadas", protect)
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	return g
}
