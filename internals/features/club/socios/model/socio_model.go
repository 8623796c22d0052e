package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SocioModel struct {
	ID              uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre          string         `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Apellido        string         `gorm:"column:apellido;type:varchar(100);not null;index:idx_socios_apellido" json:"apellido"`
	DNI             string         `gorm:"column:dni;type:varchar(20);not null;uniqueIndex:idx_socios_dni" json:"dni"`
	Telefono        *string        `gorm:"column:telefono;type:varchar(20)" json:"telefono,omitempty"`
	Email           *string        `gorm:"column:email;type:varchar(150)" json:"email,omitempty"`
	Direccion       *string        `gorm:"column:direccion;type:varchar(255)" json:"direccion,omitempty"`
	FechaNacimiento datatypes.Date `gorm:"column:fecha_nacimiento;type:date;not null" json:"fechaNacimiento"`
	FechaAlta       datatypes.Date `gorm:"column:fecha_alta;type:date;not null" json:"fechaAlta"`
	Estado          string         `gorm:"column:estado;type:varchar(10);not null;default:ACTIVO;index:idx_socios_estado" json:"estado"`
	Genero          *string        `gorm:"column:genero;type:varchar(10)" json:"genero,omitempty"`
	FotoURL         *string        `gorm:"column:foto_url;type:varchar(500)" json:"fotoUrl,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SocioModel) TableName() string { return "socios" }

func (m *SocioModel) BeforeSave(tx *gorm.DB) error {
	m.Nombre = strings.TrimSpace(m.Nombre)
	m.Apellido = strings.TrimSpace(m.Apellido)
	m.DNI = strings.TrimSpace(m.DNI)
	return nil
}

// NombreCompleto renders "Apellido, Nombre" as the dashboard lists members.
func (m SocioModel) NombreCompleto() string {
	return m.Apellido + ", " + m.Nombre
}
