package repository

import (
	"context"
	"time"

	"clubsocios_backend/internals/constants"
	model "clubsocios_backend/internals/features/club/temporadas/model"

	"gorm.io/gorm"
)

func FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.TemporadaModel, error) {
	var m model.TemporadaModel
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func FindAll(ctx context.Context, db *gorm.DB) ([]model.TemporadaModel, error) {
	list := make([]model.TemporadaModel, 0)
	err := db.WithContext(ctx).Order("fecha_inicio DESC, id DESC").Find(&list).Error
	return list, err
}

// FindActivas filters in Go: season counts are small and date comparison in
// SQL differs between the supported drivers.
func FindActivas(ctx context.Context, db *gorm.DB, today time.Time) ([]model.TemporadaModel, error) {
	all, err := FindAll(ctx, db)
	if err != nil {
		return nil, err
	}
	out := make([]model.TemporadaModel, 0, len(all))
	for _, t := range all {
		if t.EstadoEn(today) == constants.TemporadaActiva {
			out = append(out, t)
		}
	}
	return out, nil
}

func Exists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&model.TemporadaModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
