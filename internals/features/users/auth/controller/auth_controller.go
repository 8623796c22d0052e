package controller

import (
	"clubsocios_backend/internals/features/users/auth/service"
	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db)}
}

type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PasswordHashRequest struct {
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	tok, err := ac.Service.Login(c.UserContext(), req.Usuario, req.Password)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login exitoso", tok)
}

// POST /api/auth/generarPasswordHash
func (ac *AuthController) GeneratePasswordHash(c *fiber.Ctx) error {
	var req PasswordHashRequest
	if err := helper.BindStrict(c, &req); err != nil {
		return err
	}
	hashed, err := ac.Service.GeneratePasswordHash(req.Password)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Hash generado", fiber.Map{"hash": hashed})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	usuario, err := helper.GetUsernameFromToken(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", fiber.Map{"usuario": usuario})
}
