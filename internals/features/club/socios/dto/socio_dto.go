// internals/features/club/socios/dto/socio_dto.go
package dto

import (
	"strings"
	"time"

	"clubsocios_backend/internals/constants"
	model "clubsocios_backend/internals/features/club/socios/model"
	helper "clubsocios_backend/internals/helpers"
	"clubsocios_backend/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

/* ===================== REQUESTS ===================== */

// CreateSocioRequest arrives as JSON or as multipart next to the "foto" file.
type CreateSocioRequest struct {
	Nombre          string  `json:"nombre" form:"nombre" validate:"required,max=100"`
	Apellido        string  `json:"apellido" form:"apellido" validate:"required,max=100"`
	DNI             string  `json:"dni" form:"dni" validate:"required,number,min=6,max=20"`
	Telefono        *string `json:"telefono" form:"telefono" validate:"omitempty,max=20"`
	Email           *string `json:"email" form:"email" validate:"omitempty,email,max=150"`
	Direccion       *string `json:"direccion" form:"direccion" validate:"omitempty,max=255"`
	FechaNacimiento string  `json:"fechaNacimiento" form:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	FechaAlta       *string `json:"fechaAlta" form:"fechaAlta" validate:"omitempty,datetime=2006-01-02"`
	Estado          *string `json:"estado" form:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
	Genero          *string `json:"genero" form:"genero" validate:"omitempty,oneof=MASCULINO FEMENINO"`
}

func (r *CreateSocioRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.DNI = strings.TrimSpace(r.DNI)
	r.FechaNacimiento = strings.TrimSpace(r.FechaNacimiento)
	r.Telefono = trimOrNil(r.Telefono)
	r.Email = trimOrNil(r.Email)
	r.Direccion = trimOrNil(r.Direccion)
	r.FechaAlta = trimOrNil(r.FechaAlta)
	r.Estado = upperOrNil(r.Estado)
	r.Genero = upperOrNil(r.Genero)
}

// ValidateCreate runs the field rules plus "birth date not in the future".
func ValidateCreate(r *CreateSocioRequest, today time.Time) error {
	r.Normalize()
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	return checkBirthDate(r.FechaNacimiento, today)
}

// ToModel: fechaAlta defaults to today, estado to ACTIVO.
func (r CreateSocioRequest) ToModel(today time.Time) (*model.SocioModel, error) {
	nac, err := dbtime.ParseDate(r.FechaNacimiento)
	if err != nil {
		return nil, fieldError("fechaNacimiento", err.Error())
	}
	alta := today
	if r.FechaAlta != nil {
		if alta, err = dbtime.ParseDate(*r.FechaAlta); err != nil {
			return nil, fieldError("fechaAlta", err.Error())
		}
	}
	estado := constants.EstadoActivo
	if r.Estado != nil {
		estado = *r.Estado
	}
	return &model.SocioModel{
		Nombre:          r.Nombre,
		Apellido:        r.Apellido,
		DNI:             r.DNI,
		Telefono:        r.Telefono,
		Email:           r.Email,
		Direccion:       r.Direccion,
		FechaNacimiento: datatypes.Date(nac),
		FechaAlta:       datatypes.Date(dbtime.NormalizeDate(alta)),
		Estado:          estado,
		Genero:          r.Genero,
	}, nil
}

// UpdateSocioRequest: fields not sent keep their value, optional text fields
// sent empty are cleared.
type UpdateSocioRequest struct {
	Nombre          *string `json:"nombre" form:"nombre" validate:"omitempty,min=1,max=100"`
	Apellido        *string `json:"apellido" form:"apellido" validate:"omitempty,min=1,max=100"`
	DNI             *string `json:"dni" form:"dni" validate:"omitempty,number,min=6,max=20"`
	Telefono        *string `json:"telefono" form:"telefono" validate:"omitempty,max=20"`
	Email           *string `json:"email" form:"email" validate:"omitempty,max=150"`
	Direccion       *string `json:"direccion" form:"direccion" validate:"omitempty,max=255"`
	FechaNacimiento *string `json:"fechaNacimiento" form:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
	FechaAlta       *string `json:"fechaAlta" form:"fechaAlta" validate:"omitempty,datetime=2006-01-02"`
	Estado          *string `json:"estado" form:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
	Genero          *string `json:"genero" form:"genero" validate:"omitempty,max=10"`
	EliminarFoto    *bool   `json:"eliminarFoto" form:"eliminarFoto"`
	// older dashboard builds send this name
	EliminarFotoVieja *bool `json:"eliminarFotoVieja" form:"eliminarFotoVieja"`
}

func (r *UpdateSocioRequest) Normalize() {
	r.Nombre = trimPtr(r.Nombre)
	r.Apellido = trimPtr(r.Apellido)
	r.DNI = trimPtr(r.DNI)
	r.Telefono = trimPtr(r.Telefono)
	r.Email = trimPtr(r.Email)
	r.Direccion = trimPtr(r.Direccion)
	r.FechaNacimiento = trimOrNil(r.FechaNacimiento)
	r.FechaAlta = trimOrNil(r.FechaAlta)
	r.Estado = upperOrNil(r.Estado)
	if r.Genero != nil {
		g := strings.ToUpper(strings.TrimSpace(*r.Genero))
		r.Genero = &g
	}
	if r.EliminarFoto == nil && r.EliminarFotoVieja != nil {
		r.EliminarFoto = r.EliminarFotoVieja
	}
}

func (r *UpdateSocioRequest) WantsPhotoRemoved() bool {
	return r.EliminarFoto != nil && *r.EliminarFoto
}

// ValidateUpdate checks only what was sent. Empty email/genero mean "clear".
func ValidateUpdate(r *UpdateSocioRequest, today time.Time) error {
	r.Normalize()
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.Nombre != nil && *r.Nombre == "" {
		return fieldError("nombre", "es obligatorio")
	}
	if r.Apellido != nil && *r.Apellido == "" {
		return fieldError("apellido", "es obligatorio")
	}
	if r.Email != nil && *r.Email != "" {
		if err := helper.Validator().Var(*r.Email, "email"); err != nil {
			return fieldError("email", "no es un email válido")
		}
	}
	if r.Genero != nil && *r.Genero != "" && !constants.Contains(constants.Generos, *r.Genero) {
		return fieldError("genero", "debe ser uno de: "+strings.Join(constants.Generos, " "))
	}
	if r.FechaNacimiento != nil {
		return checkBirthDate(*r.FechaNacimiento, today)
	}
	return nil
}

// ApplyToModel copies only the fields present in the request.
func (r *UpdateSocioRequest) ApplyToModel(m *model.SocioModel) error {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Apellido != nil {
		m.Apellido = *r.Apellido
	}
	if r.DNI != nil && *r.DNI != "" {
		m.DNI = *r.DNI
	}
	if r.Telefono != nil {
		m.Telefono = nilIfEmpty(*r.Telefono)
	}
	if r.Email != nil {
		m.Email = nilIfEmpty(*r.Email)
	}
	if r.Direccion != nil {
		m.Direccion = nilIfEmpty(*r.Direccion)
	}
	if r.Genero != nil {
		m.Genero = nilIfEmpty(*r.Genero)
	}
	if r.Estado != nil {
		m.Estado = *r.Estado
	}
	if r.FechaNacimiento != nil {
		t, err := dbtime.ParseDate(*r.FechaNacimiento)
		if err != nil {
			return fieldError("fechaNacimiento", err.Error())
		}
		m.FechaNacimiento = datatypes.Date(t)
	}
	if r.FechaAlta != nil {
		t, err := dbtime.ParseDate(*r.FechaAlta)
		if err != nil {
			return fieldError("fechaAlta", err.Error())
		}
		m.FechaAlta = datatypes.Date(t)
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type SocioResponse struct {
	ID              uint      `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	DNI             string    `json:"dni"`
	Telefono        *string   `json:"telefono"`
	Email           *string   `json:"email"`
	Direccion       *string   `json:"direccion"`
	FechaNacimiento string    `json:"fechaNacimiento"`
	FechaAlta       string    `json:"fechaAlta"`
	Estado          string    `json:"estado"`
	Genero          *string   `json:"genero"`
	FotoURL         *string   `json:"fotoUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromModel(m *model.SocioModel) SocioResponse {
	return SocioResponse{
		ID:              m.ID,
		Nombre:          m.Nombre,
		Apellido:        m.Apellido,
		DNI:             m.DNI,
		Telefono:        m.Telefono,
		Email:           m.Email,
		Direccion:       m.Direccion,
		FechaNacimiento: dbtime.FormatDate(time.Time(m.FechaNacimiento)),
		FechaAlta:       dbtime.FormatDate(time.Time(m.FechaAlta)),
		Estado:          m.Estado,
		Genero:          m.Genero,
		FotoURL:         m.FotoURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromModels(list []model.SocioModel) []SocioResponse {
	out := make([]SocioResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

/* ===================== helpers ===================== */

func checkBirthDate(raw string, today time.Time) error {
	t, err := dbtime.ParseDate(raw)
	if err != nil {
		return fieldError("fechaNacimiento", err.Error())
	}
	if t.After(dbtime.NormalizeDate(today)) {
		return fieldError("fechaNacimiento", "no puede ser una fecha futura")
	}
	return nil
}

func fieldError(field, msg string) error {
	return helper.ErrValidationFields(constants.MsgValidacionFallida, map[string][]string{field: {msg}})
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	return nilIfEmpty(strings.TrimSpace(*p))
}

func upperOrNil(p *string) *string {
	p = trimOrNil(p)
	if p == nil {
		return nil
	}
	s := strings.ToUpper(*p)
	return &s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
