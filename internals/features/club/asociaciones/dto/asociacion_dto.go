package dto

import (
	"time"

	model "clubsocios_backend/internals/features/club/asociaciones/model"
	socioDto "clubsocios_backend/internals/features/club/socios/dto"
)

type AddSocioRequest struct {
	SocioID uint `json:"socioId" validate:"required,gt=0"`
}

// AsociacionResponse restates socioId next to the embedded member.
type AsociacionResponse struct {
	ID              uint                    `json:"id"`
	SocioID         uint                    `json:"socioId"`
	TemporadaID     uint                    `json:"temporadaId"`
	FechaAsociacion time.Time               `json:"fechaAsociacion"`
	Socio           *socioDto.SocioResponse `json:"socio,omitempty"`
}

func FromModel(m *model.SocioTemporadaModel) AsociacionResponse {
	out := AsociacionResponse{
		ID:              m.ID,
		SocioID:         m.SocioID,
		TemporadaID:     m.TemporadaID,
		FechaAsociacion: m.FechaAsociacion,
	}
	if m.Socio != nil {
		s := socioDto.FromModel(m.Socio)
		out.Socio = &s
	}
	return out
}

func FromModels(list []model.SocioTemporadaModel) []AsociacionResponse {
	out := make([]AsociacionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
