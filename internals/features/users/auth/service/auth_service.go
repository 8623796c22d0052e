// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"clubsocios_backend/internals/configs"
	"clubsocios_backend/internals/constants"
	authHelper "clubsocios_backend/internals/features/users/auth/helper"
	authModel "clubsocios_backend/internals/features/users/auth/model"
	authRepo "clubsocios_backend/internals/features/users/auth/repository"
	helper "clubsocios_backend/internals/helpers"

	"gorm.io/gorm"
)

type AuthService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
	Cost   int
	Now    func() time.Time
}

const defaultTokenTTL = 8 * time.Hour

func NewAuthService(db *gorm.DB) *AuthService {
	ttl := configs.JWTExpiresIn
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		DB:     db,
		Secret: configs.JWTSecret,
		TTL:    ttl,
		Cost:   configs.BcryptCost,
		Now:    time.Now,
	}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the credentials and issues an access token. Unknown user is a
// NotFound error, a wrong password an Auth error.
func (s *AuthService) Login(ctx context.Context, usuario, password string) (IssuedToken, error) {
	u, err := authRepo.FindUsuarioByUsername(ctx, s.DB, strings.TrimSpace(usuario))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IssuedToken{}, helper.ErrNotFound(constants.MsgUsuarioNoEncontrado)
		}
		return IssuedToken{}, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	if err := authHelper.CheckPasswordHash(u.Password, password); err != nil {
		return IssuedToken{}, helper.ErrAuth(constants.MsgPasswordIncorrecta)
	}

	tok, err := IssueToken(s.Secret, u.Usuario, s.TTL, s.now())
	if err != nil {
		return IssuedToken{}, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return tok, nil
}

func (s *AuthService) GeneratePasswordHash(password string) (string, error) {
	if password == "" {
		return "", helper.ErrValidation("La contraseña es requerida")
	}
	hashed, err := authHelper.HashPassword(password, s.Cost)
	if err != nil {
		return "", helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return hashed, nil
}

// Authenticate validates a raw token and re-reads the user it names.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*authModel.UsuarioModel, error) {
	claims, err := ParseToken(s.Secret, raw)
	if err != nil {
		return nil, err
	}
	u, err := authRepo.FindUsuarioByUsername(ctx, s.DB, claims.Usuario)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrAuth(constants.MsgTokenInvalido)
		}
		return nil, helper.ErrInternal(constants.MsgErrorInterno, err)
	}
	return u, nil
}

// EnsureUsuario creates usuario with password unless it already exists.
func (s *AuthService) EnsureUsuario(ctx context.Context, usuario, password string) (created bool, err error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || password == "" {
		return false, helper.ErrValidation("Usuario y contraseña son requeridos")
	}
	if _, err := authRepo.FindUsuarioByUsername(ctx, s.DB, usuario); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	hashed, err := authHelper.HashPassword(password, s.Cost)
	if err != nil {
		return false, err
	}
	if err := authRepo.CreateUsuario(ctx, s.DB, &authModel.UsuarioModel{Usuario: usuario, Password: hashed}); err != nil {
		return false, err
	}
	return true, nil
}
