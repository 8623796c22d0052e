package controller

import (
	"clubsocios_backend/internals/features/club/socios/dto"
	"clubsocios_backend/internals/features/club/socios/service"
	helper "clubsocios_backend/internals/helpers"
	helperOSS "clubsocios_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SocioController struct {
	DB      *gorm.DB
	Service *service.SocioService
}

func NewSocioController(db *gorm.DB, blob helperOSS.BlobService) *SocioController {
	return &SocioController{DB: db, Service: service.NewSocioService(db, blob)}
}

// GET /api/socios?page=&limit=&search=
func (ctl *SocioController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	list, total, err := ctl.Service.FindPage(c.UserContext(), p)
	if err != nil {
		return err
	}
	return helper.JsonPage(c, "Socios", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.Limit))
}

// POST /api/socios (JSON or multipart with a "foto" file)
func (ctl *SocioController) Create(c *fiber.Ctx) error {
	var req dto.CreateSocioRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	foto, err := helperOSS.GetImageFile(c, "foto")
	if err != nil {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), &req, foto)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Socio creado", dto.FromModel(m))
}

// PUT /api/socios/:id
func (ctl *SocioController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSocioRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	foto, err := helperOSS.GetImageFile(c, "foto")
	if err != nil {
		return err
	}
	m, err := ctl.Service.Update(c.UserContext(), id, &req, foto)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Socio actualizado", dto.FromModel(m))
}

// GET /api/socios/:id
func (ctl *SocioController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Socio", dto.FromModel(m))
}

// DELETE /api/socios/:id
func (ctl *SocioController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Socio eliminado", fiber.Map{"id": id})
}
