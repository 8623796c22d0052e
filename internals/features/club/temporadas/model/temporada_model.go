package model

import (
	"strings"
	"time"

	"clubsocios_backend/internals/constants"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemporadaModel struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre      string         `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	FechaInicio datatypes.Date `gorm:"column:fecha_inicio;type:date;not null;index:idx_temporadas_fecha_inicio" json:"fechaInicio"`
	FechaFin    datatypes.Date `gorm:"column:fecha_fin;type:date;not null;index:idx_temporadas_fecha_fin" json:"fechaFin"`
	Descripcion *string        `gorm:"column:descripcion;type:varchar(100)" json:"descripcion,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (TemporadaModel) TableName() string { return "temporadas" }

func (m *TemporadaModel) BeforeSave(tx *gorm.DB) error {
	m.Nombre = strings.TrimSpace(m.Nombre)
	return nil
}

// EstadoEn derives FUTURA / ACTIVA / FINALIZADA for the calendar date today.
// Both bounds are inclusive.
func (m TemporadaModel) EstadoEn(today time.Time) string {
	d := dateOnly(today)
	switch {
	case d.Before(dateOnly(time.Time(m.FechaInicio))):
		return constants.TemporadaFutura
	case d.After(dateOnly(time.Time(m.FechaFin))):
		return constants.TemporadaFinalizada
	default:
		return constants.TemporadaActiva
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
