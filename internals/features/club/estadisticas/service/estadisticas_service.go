package service

import (
	"context"
	"time"

	"clubsocios_backend/internals/constants"
	asociacionRepo "clubsocios_backend/internals/features/club/asociaciones/repository"
	"clubsocios_backend/internals/features/club/estadisticas/dto"
	ingresoRepo "clubsocios_backend/internals/features/club/registro_ingreso/repository"
	socioRepo "clubsocios_backend/internals/features/club/socios/repository"
	temporadaRepo "clubsocios_backend/internals/features/club/temporadas/repository"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

type EstadisticasService struct {
	DB    *gorm.DB
	Today func() time.Time
}

func NewEstadisticasService(db *gorm.DB) *EstadisticasService {
	return &EstadisticasService{DB: db, Today: dbtime.Today}
}

// Resumen counts members by state, the seasons running today with their
// distinct members, and today's gate entries.
func (s *EstadisticasService) Resumen(ctx context.Context) (dto.ResumenResponse, error) {
	today := dbtime.Today()
	if s.Today != nil {
		today = s.Today()
	}

	var out dto.ResumenResponse
	porEstado, err := socioRepo.CountByEstado(ctx, s.DB)
	if err != nil {
		return out, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	out.SociosActivos = porEstado[constants.EstadoActivo]
	out.SociosInactivos = porEstado[constants.EstadoInactivo]
	for _, n := range porEstado {
		out.TotalSocios += n
	}

	activas, err := temporadaRepo.FindActivas(ctx, s.DB, today)
	if err != nil {
		return out, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	out.TemporadasActivas = int64(len(activas))

	if out.SociosEnTemporadaActiva, err = asociacionRepo.CountSociosInActiveTemporadas(ctx, s.DB, today); err != nil {
		return out, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if out.IngresosHoy, err = ingresoRepo.CountOfDay(ctx, s.DB, today); err != nil {
		return out, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return out, nil
}
