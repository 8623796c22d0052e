package controller

import (
	"strconv"
	"strings"
	"time"

	"clubsocios_backend/internals/constants"
	"clubsocios_backend/internals/features/club/registro_ingreso/dto"
	"clubsocios_backend/internals/features/club/registro_ingreso/service"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegistroIngresoController struct {
	DB      *gorm.DB
	Service *service.RegistroIngresoService
}

func NewRegistroIngresoController(db *gorm.DB) *RegistroIngresoController {
	return &RegistroIngresoController{DB: db, Service: service.NewRegistroIngresoService(db)}
}

// POST /api/registro-ingreso
func (ctl *RegistroIngresoController) Registrar(c *fiber.Ctx) error {
	var req dto.RegistrarIngresoRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	m, err := ctl.Service.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Ingreso registrado", dto.FromModel(m))
}

// POST /api/registro-ingreso/escaneo {dni, accesoPileta}
func (ctl *RegistroIngresoController) Escaneo(c *fiber.Ctx) error {
	var req dto.EscaneoRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	m, err := ctl.Service.RegisterByDNI(c.UserContext(), req.DNI, req.AccesoPileta)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Ingreso registrado", dto.FromModel(m))
}

// GET /api/registro-ingreso?fecha=&tipo=&socioId=&page=&limit=
func (ctl *RegistroIngresoController) List(c *fiber.Ctx) error {
	f, err := parseListFilter(c)
	if err != nil {
		return err
	}
	list, total, err := ctl.Service.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return helper.JsonPage(c, "Ingresos", dto.FromModels(list), helper.BuildPagination(total, f.Paging.Page, f.Paging.Limit))
}

// GET /api/registro-ingreso/estadisticas?fecha=
func (ctl *RegistroIngresoController) Estadisticas(c *fiber.Ctx) error {
	day, err := parseFecha(c)
	if err != nil {
		return err
	}
	st, err := ctl.Service.DailyStats(c.UserContext(), day)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Estadísticas del día", st)
}

func parseFecha(c *fiber.Ctx) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query("fecha"))
	if raw == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(raw)
	if err != nil {
		return nil, helper.ErrValidationFields(constants.MsgValidacionFallida, map[string][]string{"fecha": {err.Error()}})
	}
	return &t, nil
}

func parseListFilter(c *fiber.Ctx) (dto.ListFilter, error) {
	f := dto.ListFilter{Paging: helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)}

	day, err := parseFecha(c)
	if err != nil {
		return f, err
	}
	f.Fecha = day

	if tipo := strings.ToUpper(strings.TrimSpace(c.Query("tipo"))); tipo != "" {
		if !constants.Contains(constants.TiposIngreso, tipo) {
			return f, helper.ErrValidationFields(constants.MsgValidacionFallida, map[string][]string{
				"tipo": {"debe ser uno de: " + strings.Join(constants.TiposIngreso, " ")},
			})
		}
		f.Tipo = tipo
	}

	if raw := strings.TrimSpace(c.Query("socioId")); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			return f, helper.ErrValidationFields(constants.MsgValidacionFallida, map[string][]string{"socioId": {"debe ser un número positivo"}})
		}
		id := uint(n)
		f.SocioID = &id
	}
	return f, nil
}
