package service

import (
	"context"
	"errors"
	"time"

	"clubsocios_backend/internals/constants"
	"clubsocios_backend/internals/features/club/temporadas/dto"
	model "clubsocios_backend/internals/features/club/temporadas/model"
	temporadaRepo "clubsocios_backend/internals/features/club/temporadas/repository"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

type TemporadaService struct {
	DB    *gorm.DB
	Today func() time.Time
}

func NewTemporadaService(db *gorm.DB) *TemporadaService {
	return &TemporadaService{DB: db, Today: dbtime.Today}
}

func (s *TemporadaService) TodayDate() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return dbtime.Today()
}

func (s *TemporadaService) Create(ctx context.Context, req *dto.CreateTemporadaRequest) (*model.TemporadaModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.ErrInternal("Error guardando la temporada", err)
	}
	return m, nil
}

func (s *TemporadaService) Update(ctx context.Context, id uint, req *dto.UpdateTemporadaRequest) (*model.TemporadaModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyToModel(m); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, helper.ErrInternal("Error actualizando la temporada", err)
	}
	return m, nil
}

// Delete removes the season and its member associations together.
func (s *TemporadaService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := temporadaRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM socio_temporadas WHERE temporada_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TemporadaModel{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound(constants.MsgTemporadaNoEncontrada)
		}
		return helper.ErrInternal("Error eliminando la temporada", err)
	}
	return nil
}

func (s *TemporadaService) FindByID(ctx context.Context, id uint) (*model.TemporadaModel, error) {
	m, err := temporadaRepo.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound(constants.MsgTemporadaNoEncontrada)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return m, nil
}

// FindAll is ordered by fecha_inicio, newest first.
func (s *TemporadaService) FindAll(ctx context.Context) ([]model.TemporadaModel, error) {
	list, err := temporadaRepo.FindAll(ctx, s.DB)
	if err != nil {
		return nil, helper.ErrInternal("Error obteniendo temporadas", err)
	}
	return list, nil
}
