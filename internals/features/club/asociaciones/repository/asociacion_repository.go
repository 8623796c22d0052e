package repository

import (
	"context"
	"time"

	model "clubsocios_backend/internals/features/club/asociaciones/model"
	temporadaRepo "clubsocios_backend/internals/features/club/temporadas/repository"

	"gorm.io/gorm"
)

// NotInTemporada drops the members already in the season. The exclusion is a
// subquery, so it binds a single parameter.
func NotInTemporada(temporadaID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&model.SocioTemporadaModel{}).
			Select("socio_id").
			Where("temporada_id = ?", temporadaID)
		return db.Where("socios.id NOT IN (?)", sub)
	}
}

func FindPair(ctx context.Context, db *gorm.DB, temporadaID, socioID uint) (*model.SocioTemporadaModel, error) {
	var m model.SocioTemporadaModel
	if err := db.WithContext(ctx).
		Where("temporada_id = ? AND socio_id = ?", temporadaID, socioID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func ListByTemporada(ctx context.Context, db *gorm.DB, temporadaID uint) ([]model.SocioTemporadaModel, error) {
	list := make([]model.SocioTemporadaModel, 0)
	err := db.WithContext(ctx).
		Preload("Socio").
		Where("temporada_id = ?", temporadaID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func activeTemporadaIDs(ctx context.Context, db *gorm.DB, today time.Time) ([]uint, error) {
	activas, err := temporadaRepo.FindActivas(ctx, db, today)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(activas))
	for _, t := range activas {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// HasActiveTemporada reports whether the member belongs to a season running today.
func HasActiveTemporada(ctx context.Context, db *gorm.DB, socioID uint, today time.Time) (bool, error) {
	ids, err := activeTemporadaIDs(ctx, db, today)
	if err != nil || len(ids) == 0 {
		return false, err
	}
	var n int64
	err = db.WithContext(ctx).Model(&model.SocioTemporadaModel{}).
		Where("socio_id = ? AND temporada_id IN ?", socioID, ids).
		Count(&n).Error
	return n > 0, err
}

// CountSociosInActiveTemporadas counts distinct members across seasons running today.
func CountSociosInActiveTemporadas(ctx context.Context, db *gorm.DB, today time.Time) (int64, error) {
	ids, err := activeTemporadaIDs(ctx, db, today)
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	var n int64
	err = db.WithContext(ctx).Model(&model.SocioTemporadaModel{}).
		Where("temporada_id IN ?", ids).
		Distinct("socio_id").
		Count(&n).Error
	return n, err
}
