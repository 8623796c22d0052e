package repository

import (
	"context"
	"time"

	"clubsocios_backend/internals/features/club/registro_ingreso/dto"
	model "clubsocios_backend/internals/features/club/registro_ingreso/model"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

func Create(ctx context.Context, db *gorm.DB, m *model.RegistroIngresoModel) error {
	return db.WithContext(ctx).Create(m).Error
}

// BetweenScope keeps entries with start <= fecha_hora < end.
func BetweenScope(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("registro_ingresos.fecha_hora >= ? AND registro_ingresos.fecha_hora < ?", start, end)
	}
}

func filterScope(f dto.ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Fecha != nil {
			db = db.Scopes(BetweenScope(dbtime.DayRange(*f.Fecha)))
		}
		if f.Tipo != "" {
			db = db.Where("registro_ingresos.tipo_ingreso = ?", f.Tipo)
		}
		if f.SocioID != nil {
			db = db.Where("registro_ingresos.socio_id = ?", *f.SocioID)
		}
		return db
	}
}

// FindPage lists entries newest first with their member loaded.
func FindPage(ctx context.Context, db *gorm.DB, f dto.ListFilter) ([]model.RegistroIngresoModel, int64, error) {
	var total int64
	q := db.WithContext(ctx).Model(&model.RegistroIngresoModel{}).Scopes(filterScope(f))
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := make([]model.RegistroIngresoModel, 0)
	if err := db.WithContext(ctx).
		Scopes(filterScope(f)).
		Preload("Socio").
		Order("registro_ingresos.fecha_hora DESC").
		Order("registro_ingresos.id DESC").
		Offset(f.Paging.Offset).
		Limit(f.Paging.Limit).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindOfDay returns every entry of the club calendar day.
func FindOfDay(ctx context.Context, db *gorm.DB, day time.Time) ([]model.RegistroIngresoModel, error) {
	list := make([]model.RegistroIngresoModel, 0)
	err := db.WithContext(ctx).
		Scopes(BetweenScope(dbtime.DayRange(day))).
		Order("fecha_hora ASC").
		Find(&list).Error
	return list, err
}

func CountOfDay(ctx context.Context, db *gorm.DB, day time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.RegistroIngresoModel{}).
		Scopes(BetweenScope(dbtime.DayRange(day))).
		Count(&n).Error
	return n, err
}
