// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocRawToken = "raw_token"
	LocUsuario  = "usuario"
)

// GetRawAccessToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when absent. Extra spaces, a lowercase scheme and surrounding quotes are tolerated.
func GetRawAccessToken(c *fiber.Ctx) string {
	fields := strings.Fields(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
}

// GetUsernameFromToken returns the username the auth middleware stored.
func GetUsernameFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUsuario).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrAuth("Usuario no autenticado")
	}
	return v, nil
}
