package model

import (
	"time"

	socioModel "clubsocios_backend/internals/features/club/socios/model"
)

// RegistroIngresoModel is one gate entry. Rows are append-only; the member
// reference goes NULL when the member is deleted.
type RegistroIngresoModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FechaHora    time.Time `gorm:"column:fecha_hora;not null;index:idx_registro_ingresos_fecha_hora" json:"fechaHora"`
	TipoIngreso  string    `gorm:"column:tipo_ingreso;type:varchar(20);not null;index:idx_registro_ingresos_tipo" json:"tipoIngreso"`
	SocioID      *uint     `gorm:"column:socio_id;index:idx_registro_ingresos_socio" json:"socioId"`
	AccesoPileta bool      `gorm:"column:acceso_pileta;not null;default:false" json:"accesoPileta"`
	MetodoPago   *string   `gorm:"column:metodo_pago;type:varchar(20)" json:"metodoPago"`
	Importe      *float64  `gorm:"column:importe;type:decimal(10,2)" json:"importe"`
	DNI          *string   `gorm:"column:dni;type:varchar(20)" json:"dni"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Socio *socioModel.SocioModel `gorm:"foreignKey:SocioID;constraint:OnDelete:SET NULL" json:"socio,omitempty"`
}

func (RegistroIngresoModel) TableName() string { return "registro_ingresos" }
