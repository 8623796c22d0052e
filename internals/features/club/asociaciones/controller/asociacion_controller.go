package controller

import (
	"clubsocios_backend/internals/features/club/asociaciones/dto"
	"clubsocios_backend/internals/features/club/asociaciones/service"
	socioDto "clubsocios_backend/internals/features/club/socios/dto"
	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AsociacionController struct {
	DB      *gorm.DB
	Service *service.AsociacionService
}

func NewAsociacionController(db *gorm.DB) *AsociacionController {
	return &AsociacionController{DB: db, Service: service.NewAsociacionService(db)}
}

// GET /api/temporadas/:id/socios-disponibles?page=&limit=&search=
func (ctl *AsociacionController) Disponibles(c *fiber.Ctx) error {
	temporadaID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	list, total, err := ctl.Service.AvailableMembers(c.UserContext(), temporadaID, p)
	if err != nil {
		return err
	}
	return helper.JsonPage(c, "Socios disponibles", socioDto.FromModels(list), helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/temporadas/:id/socios
func (ctl *AsociacionController) ListSocios(c *fiber.Ctx) error {
	temporadaID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	list, err := ctl.Service.ListMembersOfSeason(c.UserContext(), temporadaID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Socios de la temporada", dto.FromModels(list))
}

// POST /api/temporadas/:id/socios {socioId}
func (ctl *AsociacionController) AddSocio(c *fiber.Ctx) error {
	temporadaID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AddSocioRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	m, err := ctl.Service.AddMemberToSeason(c.UserContext(), temporadaID, req.SocioID)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Socio asociado a la temporada", dto.FromModel(m))
}

// DELETE /api/temporadas/:id/socios/:socioId
func (ctl *AsociacionController) RemoveSocio(c *fiber.Ctx) error {
	temporadaID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	socioID, err := helper.ParseIDParam(c, "socioId")
	if err != nil {
		return err
	}
	if err := ctl.Service.RemoveMemberFromSeason(c.UserContext(), temporadaID, socioID); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Socio quitado de la temporada", fiber.Map{"temporadaId": temporadaID, "socioId": socioID})
}
