package routes

import (
	asociacionModel "clubsocios_backend/internals/features/club/asociaciones/model"
	ingresoModel "clubsocios_backend/internals/features/club/registro_ingreso/model"
	socioModel "clubsocios_backend/internals/features/club/socios/model"
	temporadaModel "clubsocios_backend/internals/features/club/temporadas/model"
	authModel "clubsocios_backend/internals/features/users/auth/model"
)

// AllModels lists the tables in dependency order for AutoMigrate.
func AllModels() []any {
	return []any{
		&authModel.UsuarioModel{},
		&socioModel.SocioModel{},
		&temporadaModel.TemporadaModel{},
		&asociacionModel.SocioTemporadaModel{},
		&ingresoModel.RegistroIngresoModel{},
	}
}
