// internals/features/club/temporadas/dto/temporada_dto.go
package dto

import (
	"strings"
	"time"

	"clubsocios_backend/internals/constants"
	model "clubsocios_backend/internals/features/club/temporadas/model"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

type CreateTemporadaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,max=100"`
	FechaInicio string  `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string  `json:"fechaFin" validate:"required,datetime=2006-01-02"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=100"`
}

func (r *CreateTemporadaRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.FechaInicio = strings.TrimSpace(r.FechaInicio)
	r.FechaFin = strings.TrimSpace(r.FechaFin)
	if r.Descripcion != nil {
		d := strings.TrimSpace(*r.Descripcion)
		if d == "" {
			r.Descripcion = nil
		} else {
			r.Descripcion = &d
		}
	}
}

func (r CreateTemporadaRequest) ToModel() (*model.TemporadaModel, error) {
	ini, err := dbtime.ParseDate(r.FechaInicio)
	if err != nil {
		return nil, fieldError("fechaInicio", err.Error())
	}
	fin, err := dbtime.ParseDate(r.FechaFin)
	if err != nil {
		return nil, fieldError("fechaFin", err.Error())
	}
	m := &model.TemporadaModel{
		Nombre:      r.Nombre,
		FechaInicio: datatypes.Date(ini),
		FechaFin:    datatypes.Date(fin),
		Descripcion: r.Descripcion,
	}
	return m, CheckRange(m)
}

// UpdateTemporadaRequest is a PATCH: only the fields sent change.
type UpdateTemporadaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	FechaInicio *string `json:"fechaInicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fechaFin" validate:"omitempty,datetime=2006-01-02"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=100"`
}

func (r *UpdateTemporadaRequest) Normalize() {
	if r.Nombre != nil {
		n := strings.TrimSpace(*r.Nombre)
		r.Nombre = &n
	}
	if r.FechaInicio != nil {
		s := strings.TrimSpace(*r.FechaInicio)
		r.FechaInicio = &s
	}
	if r.FechaFin != nil {
		s := strings.TrimSpace(*r.FechaFin)
		r.FechaFin = &s
	}
	if r.Descripcion != nil {
		d := strings.TrimSpace(*r.Descripcion)
		r.Descripcion = &d
	}
}

func (r *UpdateTemporadaRequest) ApplyToModel(m *model.TemporadaModel) error {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.FechaInicio != nil {
		t, err := dbtime.ParseDate(*r.FechaInicio)
		if err != nil {
			return fieldError("fechaInicio", err.Error())
		}
		m.FechaInicio = datatypes.Date(t)
	}
	if r.FechaFin != nil {
		t, err := dbtime.ParseDate(*r.FechaFin)
		if err != nil {
			return fieldError("fechaFin", err.Error())
		}
		m.FechaFin = datatypes.Date(t)
	}
	if r.Descripcion != nil {
		if *r.Descripcion == "" {
			m.Descripcion = nil
		} else {
			d := *r.Descripcion
			m.Descripcion = &d
		}
	}
	return CheckRange(m)
}

// CheckRange rejects a season that ends before it starts. Same-day seasons are fine.
func CheckRange(m *model.TemporadaModel) error {
	if time.Time(m.FechaFin).Before(time.Time(m.FechaInicio)) {
		return fieldError("fechaFin", constants.MsgRangoFechasInvalido)
	}
	return nil
}

type TemporadaResponse struct {
	ID          uint      `json:"id"`
	Nombre      string    `json:"nombre"`
	FechaInicio string    `json:"fechaInicio"`
	FechaFin    string    `json:"fechaFin"`
	Descripcion *string   `json:"descripcion"`
	CreatedAt   time.Time `json:"createdAt"`
	Estado      string    `json:"estado"`
}

func FromModel(m *model.TemporadaModel, today time.Time) TemporadaResponse {
	return TemporadaResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		FechaInicio: dbtime.FormatDate(time.Time(m.FechaInicio)),
		FechaFin:    dbtime.FormatDate(time.Time(m.FechaFin)),
		Descripcion: m.Descripcion,
		CreatedAt:   m.CreatedAt,
		Estado:      m.EstadoEn(today),
	}
}

func FromModels(list []model.TemporadaModel, today time.Time) []TemporadaResponse {
	out := make([]TemporadaResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i], today))
	}
	return out
}

func fieldError(field, msg string) error {
	return helper.ErrValidationFields(constants.MsgValidacionFallida, map[string][]string{field: {msg}})
}
