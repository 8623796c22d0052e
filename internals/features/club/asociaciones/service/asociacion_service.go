// internals/features/club/asociaciones/service/asociacion_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"clubsocios_backend/internals/configs"
	"clubsocios_backend/internals/constants"
	database "clubsocios_backend/internals/databases"
	model "clubsocios_backend/internals/features/club/asociaciones/model"
	asociacionRepo "clubsocios_backend/internals/features/club/asociaciones/repository"
	socioModel "clubsocios_backend/internals/features/club/socios/model"
	socioRepo "clubsocios_backend/internals/features/club/socios/repository"
	temporadaModel "clubsocios_backend/internals/features/club/temporadas/model"
	temporadaRepo "clubsocios_backend/internals/features/club/temporadas/repository"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

type AsociacionService struct {
	DB    *gorm.DB
	Today func() time.Time
	// LockEnded rejects add/remove on seasons whose end date has passed.
	LockEnded bool
}

func NewAsociacionService(db *gorm.DB) *AsociacionService {
	return &AsociacionService{DB: db, Today: dbtime.Today, LockEnded: configs.SeasonLockEnded}
}

func (s *AsociacionService) today() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return dbtime.Today()
}

func (s *AsociacionService) temporada(ctx context.Context, id uint) (*temporadaModel.TemporadaModel, error) {
	t, err := temporadaRepo.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgTemporadaNoEncontrada)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return t, nil
}

func (s *AsociacionService) checkWritable(t *temporadaModel.TemporadaModel) error {
	if s.LockEnded && t.EstadoEn(s.today()) == constants.TemporadaFinalizada {
		return helper.ErrValidation(constants.MsgTemporadaFinalizada)
	}
	return nil
}

// AvailableMembers pages through the members not yet in the season, filtered
// by p.Search and ordered by apellido, nombre.
func (s *AsociacionService) AvailableMembers(ctx context.Context, temporadaID uint, p helper.Paging) ([]socioModel.SocioModel, int64, error) {
	ok, err := temporadaRepo.Exists(ctx, s.DB, temporadaID)
	if err != nil {
		return nil, 0, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if !ok {
		return nil, 0, helper.ErrNotFound(constants.MsgTemporadaNoEncontrada)
	}
	p.Search = strings.TrimSpace(p.Search)
	list, total, err := socioRepo.FindPage(ctx, s.DB, p, asociacionRepo.NotInTemporada(temporadaID))
	if err != nil {
		return nil, 0, helper.ErrInternal("Error obteniendo socios disponibles", err)
	}
	return list, total, nil
}

// ListMembersOfSeason returns the season's associations with their member,
// ordered like the member list.
func (s *AsociacionService) ListMembersOfSeason(ctx context.Context, temporadaID uint) ([]model.SocioTemporadaModel, error) {
	if _, err := s.temporada(ctx, temporadaID); err != nil {
		return nil, err
	}
	list, err := asociacionRepo.ListByTemporada(ctx, s.DB, temporadaID)
	if err != nil {
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Socio, list[j].Socio
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if a.Apellido != b.Apellido {
			return a.Apellido < b.Apellido
		}
		return a.Nombre < b.Nombre
	})
	return list, nil
}

func (s *AsociacionService) AddMemberToSeason(ctx context.Context, temporadaID, socioID uint) (*model.SocioTemporadaModel, error) {
	t, err := s.temporada(ctx, temporadaID)
	if err != nil {
		return nil, err
	}
	socio, err := socioRepo.FindByID(ctx, s.DB, socioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgSocioNoEncontrado)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if err := s.checkWritable(t); err != nil {
		return nil, err
	}

	if _, err := asociacionRepo.FindPair(ctx, s.DB, temporadaID, socioID); err == nil {
		return nil, helper.ErrValidation(constants.MsgAsociacionDuplicada)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}

	m := &model.SocioTemporadaModel{SocioID: socioID, TemporadaID: temporadaID}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, helper.ErrValidation(constants.MsgAsociacionDuplicada)
		}
		return nil, helper.ErrInternal("Error asociando el socio", err)
	}
	m.Socio = socio
	return m, nil
}

// RemoveMemberFromSeason fails with NotFound and touches nothing when the pair is absent.
func (s *AsociacionService) RemoveMemberFromSeason(ctx context.Context, temporadaID, socioID uint) error {
	m, err := asociacionRepo.FindPair(ctx, s.DB, temporadaID, socioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound(constants.MsgAsociacionNoEncontrada)
		}
		return helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if s.LockEnded {
		t, err := s.temporada(ctx, temporadaID)
		if err != nil {
			return err
		}
		if err := s.checkWritable(t); err != nil {
			return err
		}
	}
	if err := s.DB.WithContext(ctx).Delete(&model.SocioTemporadaModel{}, m.ID).Error; err != nil {
		return helper.ErrInternal("Error quitando el socio de la temporada", err)
	}
	return nil
}
