package constants

// Estado del socio
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Genero del socio
const (
	GeneroMasculino = "MASCULINO"
	GeneroFemenino  = "FEMENINO"
)

// Tipo de ingreso al club
const (
	TipoIngresoSocioClub   = "SOCIO_CLUB"
	TipoIngresoSocioPileta = "SOCIO_PILETA"
	TipoIngresoNoSocio     = "NO_SOCIO"
)

// Metodo de pago de un no socio
const (
	MetodoPagoEfectivo      = "EFECTIVO"
	MetodoPagoTransferencia = "TRANSFERENCIA"
)

// Estado derivado de una temporada respecto de "hoy"
const (
	TemporadaFutura     = "FUTURA"
	TemporadaActiva     = "ACTIVA"
	TemporadaFinalizada = "FINALIZADA"
)

var (
	EstadosSocio  = []string{EstadoActivo, EstadoInactivo}
	Generos       = []string{GeneroMasculino, GeneroFemenino}
	TiposIngreso  = []string{TipoIngresoSocioClub, TipoIngresoSocioPileta, TipoIngresoNoSocio}
	MetodosDePago = []string{MetodoPagoEfectivo, MetodoPagoTransferencia}
)

func Contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
