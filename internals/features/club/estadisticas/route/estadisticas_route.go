package route

import (
	"clubsocios_backend/internals/features/club/estadisticas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EstadisticasRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewEstadisticasController(db)

	g := r.Group("/estadisticas", protect)
	g.Get("/resumen", ctl.Resumen)
}
