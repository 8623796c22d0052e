package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubsocios_backend/internals/constants"
	asociacionRepo "clubsocios_backend/internals/features/club/asociaciones/repository"
	"clubsocios_backend/internals/features/club/registro_ingreso/dto"
	model "clubsocios_backend/internals/features/club/registro_ingreso/model"
	ingresoRepo "clubsocios_backend/internals/features/club/registro_ingreso/repository"
	socioModel "clubsocios_backend/internals/features/club/socios/model"
	socioRepo "clubsocios_backend/internals/features/club/socios/repository"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"
	"clubsocios_backend/internals/middlewares/metrics"

	"gorm.io/gorm"
)

type RegistroIngresoService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRegistroIngresoService(db *gorm.DB) *RegistroIngresoService {
	return &RegistroIngresoService{DB: db, Now: time.Now}
}

func (s *RegistroIngresoService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register stores a desk entry. Member entries snapshot the member's DNI.
func (s *RegistroIngresoService) Register(ctx context.Context, req *dto.RegistrarIngresoRequest) (*model.RegistroIngresoModel, error) {
	if err := dto.ValidateRegistro(req); err != nil {
		return nil, err
	}

	m := req.ToModel(s.now())
	if req.IsSocio() {
		socio, err := s.findSocio(ctx, *req.SocioID)
		if err != nil {
			return nil, err
		}
		dni := socio.DNI
		m.DNI = &dni
		m.Socio = socio
	}
	return s.persist(ctx, m)
}

// RegisterByDNI classifies a scanned member: SOCIO_PILETA when the member
// belongs to a season running today, SOCIO_CLUB otherwise. A SOCIO_PILETA
// entry always carries pool access.
func (s *RegistroIngresoService) RegisterByDNI(ctx context.Context, dni string, accesoPileta bool) (*model.RegistroIngresoModel, error) {
	socio, err := socioRepo.FindByDNI(ctx, s.DB, dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgSocioNoEncontrado)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if socio.Estado == constants.EstadoInactivo {
		return nil, helper.ErrValidation(constants.MsgSocioInactivo)
	}

	now := s.now()
	pileta, err := asociacionRepo.HasActiveTemporada(ctx, s.DB, socio.ID, dbtime.DateOf(now))
	if err != nil {
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if accesoPileta && !pileta {
		return nil, helper.ErrValidation(constants.MsgSinTemporadaPileta)
	}

	tipo := constants.TipoIngresoSocioClub
	if pileta {
		tipo = constants.TipoIngresoSocioPileta
	}
	id := socio.ID
	dniCopy := socio.DNI
	m := &model.RegistroIngresoModel{
		FechaHora:    now.UTC(),
		TipoIngreso:  tipo,
		SocioID:      &id,
		AccesoPileta: accesoPileta || pileta,
		DNI:          &dniCopy,
		Socio:        socio,
	}
	return s.persist(ctx, m)
}

func (s *RegistroIngresoService) List(ctx context.Context, f dto.ListFilter) ([]model.RegistroIngresoModel, int64, error) {
	list, total, err := ingresoRepo.FindPage(ctx, s.DB, f)
	if err != nil {
		return nil, 0, helper.ErrInternal("Error obteniendo ingresos", err)
	}
	return list, total, nil
}

// DailyStats aggregates the entries of the given club day; a nil day means today.
func (s *RegistroIngresoService) DailyStats(ctx context.Context, day *time.Time) (dto.DailyStats, error) {
	d := dbtime.DateOf(s.now())
	if day != nil {
		d = *day
	}
	list, err := ingresoRepo.FindOfDay(ctx, s.DB, d)
	if err != nil {
		return dto.DailyStats{}, helper.ErrInternal("Error obteniendo estadísticas", err)
	}
	return dto.BuildDailyStats(d, list), nil
}

func (s *RegistroIngresoService) findSocio(ctx context.Context, id uint) (*socioModel.SocioModel, error) {
	socio, err := socioRepo.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgSocioNoEncontrado)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return socio, nil
}

func (s *RegistroIngresoService) persist(ctx context.Context, m *model.RegistroIngresoModel) (*model.RegistroIngresoModel, error) {
	// the member row is already loaded; do not let Create upsert it
	if err := ingresoRepo.Create(ctx, s.DB.Omit("Socio"), m); err != nil {
		return nil, helper.ErrInternal("Error registrando el ingreso", err)
	}
	metrics.RecordIngreso(m.TipoIngreso)
	attrs := []any{"id", m.ID, "tipo", m.TipoIngreso}
	if m.SocioID != nil {
		attrs = append(attrs, "socio_id", *m.SocioID)
	}
	slog.Info("ingreso registrado", attrs...)
	return m, nil
}
