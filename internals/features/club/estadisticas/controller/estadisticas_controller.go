package controller

import (
	"clubsocios_backend/internals/features/club/estadisticas/service"
	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EstadisticasController struct {
	Service *service.EstadisticasService
}

func NewEstadisticasController(db *gorm.DB) *EstadisticasController {
	return &EstadisticasController{Service: service.NewEstadisticasService(db)}
}

// GET /api/estadisticas/resumen
func (ctl *EstadisticasController) Resumen(c *fiber.Ctx) error {
	out, err := ctl.Service.Resumen(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Resumen", out)
}
