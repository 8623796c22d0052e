package constants

// Mensajes de error expuestos al cliente
const (
	MsgDniDuplicado           = "El DNI ya se encuentra registrado"
	MsgSocioNoEncontrado      = "Socio no encontrado"
	MsgTemporadaNoEncontrada  = "Temporada no encontrada"
	MsgAsociacionNoEncontrada = "Asociacion no encontrada"
	MsgAsociacionDuplicada    = "El socio ya está asociado a la temporada"
	MsgTemporadaFinalizada    = "No se pueden modificar socios de temporadas finalizadas"
	MsgRangoFechasInvalido    = "La fecha de fin debe ser posterior a la fecha de inicio"
	MsgErrorSubirFoto         = "Error al subir la foto del socio"
	MsgAlmacenamientoNoConfig = "El almacenamiento de fotos no está configurado"
	MsgUsuarioNoEncontrado    = "Usuario no encontrado"
	MsgPasswordIncorrecta     = "La contraseña ingresada es incorrecta"
	MsgTokenInvalido          = "Token no valido"
	MsgSocioInactivo          = "El socio se encuentra inactivo"
	MsgSinTemporadaPileta     = "El socio no tiene temporada de pileta activa"
	MsgIngresoNoEncontrado    = "Ingreso no encontrado"
	MsgPayloadInvalido        = "Payload inválido"
	MsgValidacionFallida      = "Validación fallida"
	MsgErrorInterno           = "Error interno del servidor"
)
