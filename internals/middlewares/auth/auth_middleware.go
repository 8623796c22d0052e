// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log/slog"

	"clubsocios_backend/internals/constants"
	authService "clubsocios_backend/internals/features/users/auth/service"
	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware requires a valid Bearer token whose user still exists. The
// user is re-read on every request; nothing is cached between requests.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	svc := authService.NewAuthService(db)
	return Protect(svc)
}

// Protect is AuthMiddleware over an already built service.
func Protect(svc *authService.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.ErrAuth(constants.MsgTokenInvalido)
		}

		u, err := svc.Authenticate(c.UserContext(), raw)
		if err != nil {
			slog.Debug("auth rejected", "path", c.Path(), "err", err)
			return err
		}

		c.Locals(helper.LocRawToken, raw)
		c.Locals(helper.LocUsuario, u.Usuario)
		return c.Next()
	}
}
