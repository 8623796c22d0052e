package dto

// ResumenResponse feeds the dashboard home cards.
type ResumenResponse struct {
	TotalSocios             int64 `json:"totalSocios"`
	SociosActivos           int64 `json:"sociosActivos"`
	SociosInactivos         int64 `json:"sociosInactivos"`
	TemporadasActivas       int64 `json:"temporadasActivas"`
	SociosEnTemporadaActiva int64 `json:"sociosEnTemporadaActiva"`
	IngresosHoy             int64 `json:"ingresosHoy"`
}
