package route

import (
	"clubsocios_backend/internals/features/club/registro_ingreso/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegistroIngresoRoutes(r fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewRegistroIngresoController(db)

	g := r.Group("/registro-ingreso", protect)
	g.Post("/", ctl.Registrar)
	g.Post("/escaneo", ctl.Escaneo)
	g.Get("/", ctl.List)
	g.Get("/estadisticas", ctl.Estadisticas)
}
