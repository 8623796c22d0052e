package route

import (
	"clubsocios_backend/internals/features/club/asociaciones/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AsociacionRoutes expects the authenticated /temporadas group.
func AsociacionRoutes(temporadas fiber.Router, db *gorm.DB) {
	ctl := controller.NewAsociacionController(db)

	temporadas.Get("/:id/socios-disponibles", ctl.Disponibles)
	temporadas.Get("/:id/socios", ctl.ListSocios)
	temporadas.Post("/:id/socios", ctl.AddSocio)
	temporadas.Delete("/:id/socios/:socioId", ctl.RemoveSocio)
}
