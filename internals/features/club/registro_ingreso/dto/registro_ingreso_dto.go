package dto

import (
	"math"
	"strings"
	"time"

	"clubsocios_backend/internals/constants"
	model "clubsocios_backend/internals/features/club/registro_ingreso/model"
	socioDto "clubsocios_backend/internals/features/club/socios/dto"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

// RegistrarIngresoRequest is the manual entry form of the gate desk.
type RegistrarIngresoRequest struct {
	TipoIngreso  string   `json:"tipoIngreso" validate:"required,oneof=SOCIO_CLUB SOCIO_PILETA NO_SOCIO"`
	SocioID      *uint    `json:"socioId" validate:"omitempty,gt=0"`
	AccesoPileta bool     `json:"accesoPileta"`
	MetodoPago   *string  `json:"metodoPago" validate:"omitempty,oneof=EFECTIVO TRANSFERENCIA"`
	Importe      *float64 `json:"importe"`
	DNI          *string  `json:"dni" validate:"omitempty,number,min=6,max=20"`
}

func (r *RegistrarIngresoRequest) Normalize() {
	r.TipoIngreso = strings.ToUpper(strings.TrimSpace(r.TipoIngreso))
	if r.MetodoPago != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.MetodoPago))
		r.MetodoPago = nilIfEmpty(v)
	}
	if r.DNI != nil {
		r.DNI = nilIfEmpty(strings.TrimSpace(*r.DNI))
	}
}

// IsSocio is true for the two member entry types.
func (r *RegistrarIngresoRequest) IsSocio() bool {
	return r.TipoIngreso == constants.TipoIngresoSocioClub || r.TipoIngreso == constants.TipoIngresoSocioPileta
}

// ValidateRegistro checks the field rules and the per-type combination:
// member entries carry a socioId and no payment, visitor entries carry
// dni, payment method and a positive amount but no socioId.
func ValidateRegistro(r *RegistrarIngresoRequest) error {
	r.Normalize()
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}

	fields := map[string][]string{}
	if r.IsSocio() {
		if r.SocioID == nil {
			fields["socioId"] = append(fields["socioId"], "es obligatorio para ingresos de socios")
		}
		if r.MetodoPago != nil {
			fields["metodoPago"] = append(fields["metodoPago"], "no corresponde para ingresos de socios")
		}
		if r.Importe != nil {
			fields["importe"] = append(fields["importe"], "no corresponde para ingresos de socios")
		}
	} else {
		if r.SocioID != nil {
			fields["socioId"] = append(fields["socioId"], "no corresponde para ingresos de no socios")
		}
		if r.DNI == nil {
			fields["dni"] = append(fields["dni"], "es obligatorio")
		}
		if r.MetodoPago == nil {
			fields["metodoPago"] = append(fields["metodoPago"], "es obligatorio")
		}
		switch {
		case r.Importe == nil:
			fields["importe"] = append(fields["importe"], "es obligatorio")
		case *r.Importe <= 0 || math.IsNaN(*r.Importe):
			fields["importe"] = append(fields["importe"], "debe ser mayor a 0")
		case *r.Importe > 99999999.99:
			fields["importe"] = append(fields["importe"], "excede el máximo permitido")
		}
	}
	if len(fields) > 0 {
		return helper.ErrValidationFields(constants.MsgValidacionFallida, fields)
	}
	return nil
}

// ToModel stamps the entry with now (UTC). Amounts keep two decimals.
func (r RegistrarIngresoRequest) ToModel(now time.Time) *model.RegistroIngresoModel {
	m := &model.RegistroIngresoModel{
		FechaHora:    now.UTC(),
		TipoIngreso:  r.TipoIngreso,
		SocioID:      r.SocioID,
		AccesoPileta: r.AccesoPileta || r.TipoIngreso == constants.TipoIngresoSocioPileta,
		MetodoPago:   r.MetodoPago,
		DNI:          r.DNI,
	}
	if r.Importe != nil {
		v := math.Round(*r.Importe*100) / 100
		m.Importe = &v
	}
	return m
}

// EscaneoRequest is what the gate scanner posts after reading a DNI or QR.
type EscaneoRequest struct {
	DNI          string `json:"dni" validate:"required,number,min=6,max=20"`
	AccesoPileta bool   `json:"accesoPileta"`
}

func (r *EscaneoRequest) Normalize() {
	r.DNI = strings.TrimSpace(r.DNI)
}

// ListFilter narrows the entry list. Fecha is a calendar date in the club timezone.
type ListFilter struct {
	Fecha   *time.Time
	Tipo    string
	SocioID *uint
	Paging  helper.Paging
}

/* ===================== RESPONSES ===================== */

type IngresoResponse struct {
	ID           uint                    `json:"id"`
	FechaHora    time.Time               `json:"fechaHora"`
	TipoIngreso  string                  `json:"tipoIngreso"`
	SocioID      *uint                   `json:"socioId"`
	AccesoPileta bool                    `json:"accesoPileta"`
	MetodoPago   *string                 `json:"metodoPago"`
	Importe      *float64                `json:"importe"`
	DNI          *string                 `json:"dni"`
	Socio        *socioDto.SocioResponse `json:"socio,omitempty"`
}

func FromModel(m *model.RegistroIngresoModel) IngresoResponse {
	out := IngresoResponse{
		ID:           m.ID,
		FechaHora:    m.FechaHora,
		TipoIngreso:  m.TipoIngreso,
		SocioID:      m.SocioID,
		AccesoPileta: m.AccesoPileta,
		MetodoPago:   m.MetodoPago,
		Importe:      m.Importe,
		DNI:          m.DNI,
	}
	if m.Socio != nil {
		s := socioDto.FromModel(m.Socio)
		out.Socio = &s
	}
	return out
}

func FromModels(list []model.RegistroIngresoModel) []IngresoResponse {
	out := make([]IngresoResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

type Recaudacion struct {
	Efectivo      float64 `json:"EFECTIVO"`
	Transferencia float64 `json:"TRANSFERENCIA"`
	Total         float64 `json:"total"`
}

// DailyStats summarises one club day of entries.
type DailyStats struct {
	Fecha         string         `json:"fecha"`
	TotalEntradas int            `json:"totalEntradas"`
	PorTipo       map[string]int `json:"porTipo"`
	ConPileta     int            `json:"conPileta"`
	Recaudacion   Recaudacion    `json:"recaudacion"`
}

// BuildDailyStats aggregates the given entries; every tipo appears in porTipo.
func BuildDailyStats(day time.Time, list []model.RegistroIngresoModel) DailyStats {
	st := DailyStats{
		Fecha:   dbtime.FormatDate(day),
		PorTipo: make(map[string]int, len(constants.TiposIngreso)),
	}
	for _, t := range constants.TiposIngreso {
		st.PorTipo[t] = 0
	}

	var cents struct{ efectivo, transferencia int64 }
	for _, m := range list {
		st.TotalEntradas++
		st.PorTipo[m.TipoIngreso]++
		if m.AccesoPileta {
			st.ConPileta++
		}
		if m.Importe == nil || m.MetodoPago == nil {
			continue
		}
		c := int64(math.Round(*m.Importe * 100))
		switch *m.MetodoPago {
		case constants.MetodoPagoEfectivo:
			cents.efectivo += c
		case constants.MetodoPagoTransferencia:
			cents.transferencia += c
		}
	}
	st.Recaudacion = Recaudacion{
		Efectivo:      float64(cents.efectivo) / 100,
		Transferencia: float64(cents.transferencia) / 100,
		Total:         float64(cents.efectivo+cents.transferencia) / 100,
	}
	return st
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
