package details

import (
	asociacionRoute "clubsocios_backend/internals/features/club/asociaciones/route"
	estadisticasRoute "clubsocios_backend/internals/features/club/estadisticas/route"
	ingresoRoute "clubsocios_backend/internals/features/club/registro_ingreso/route"
	socioRoute "clubsocios_backend/internals/features/club/socios/route"
	temporadaRoute "clubsocios_backend/internals/features/club/temporadas/route"
	helperOSS "clubsocios_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClubRoutes mounts every club resource behind protect.
func ClubRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService, protect fiber.Handler) {
	socioRoute.SocioRoutes(api, db, blob, protect)

	temporadas := temporadaRoute.TemporadaRoutes(api, db, protect)
	asociacionRoute.AsociacionRoutes(temporadas, db)

	ingresoRoute.RegistroIngresoRoutes(api, db, protect)
	estadisticasRoute.EstadisticasRoutes(api, db, protect)
}
