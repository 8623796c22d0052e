package model

import (
	"time"

	socioModel "clubsocios_backend/internals/features/club/socios/model"
	temporadaModel "clubsocios_backend/internals/features/club/temporadas/model"
)

// SocioTemporadaModel links a member to a season; a pair appears at most once.
type SocioTemporadaModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SocioID         uint      `gorm:"column:socio_id;not null;uniqueIndex:uq_socio_temporada,priority:1" json:"socioId"`
	TemporadaID     uint      `gorm:"column:temporada_id;not null;uniqueIndex:uq_socio_temporada,priority:2;index:idx_socio_temporadas_temporada" json:"temporadaId"`
	FechaAsociacion time.Time `gorm:"column:fecha_asociacion;autoCreateTime" json:"fechaAsociacion"`

	Socio     *socioModel.SocioModel         `gorm:"foreignKey:SocioID;constraint:OnDelete:CASCADE" json:"socio,omitempty"`
	Temporada *temporadaModel.TemporadaModel `gorm:"foreignKey:TemporadaID;constraint:OnDelete:CASCADE" json:"temporada,omitempty"`
}

func (SocioTemporadaModel) TableName() string { return "socio_temporadas" }
