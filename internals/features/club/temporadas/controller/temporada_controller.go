package controller

import (
	"clubsocios_backend/internals/features/club/temporadas/dto"
	"clubsocios_backend/internals/features/club/temporadas/service"
	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TemporadaController struct {
	DB      *gorm.DB
	Service *service.TemporadaService
}

func NewTemporadaController(db *gorm.DB) *TemporadaController {
	return &TemporadaController{DB: db, Service: service.NewTemporadaService(db)}
}

func (ctl *TemporadaController) Create(c *fiber.Ctx) error {
	var req dto.CreateTemporadaRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Temporada creada", dto.FromModel(m, ctl.Service.TodayDate()))
}

func (ctl *TemporadaController) List(c *fiber.Ctx) error {
	list, err := ctl.Service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Temporadas", dto.FromModels(list, ctl.Service.TodayDate()))
}

func (ctl *TemporadaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Temporada", dto.FromModel(m, ctl.Service.TodayDate()))
}

func (ctl *TemporadaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTemporadaRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	m, err := ctl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Temporada actualizada", dto.FromModel(m, ctl.Service.TodayDate()))
}

func (ctl *TemporadaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Temporada eliminada", fiber.Map{"id": id})
}
