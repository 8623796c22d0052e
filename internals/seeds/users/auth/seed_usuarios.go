package user

import (
	"context"
	"log/slog"
	"os"
	"strings"

	authService "clubsocios_backend/internals/features/users/auth/service"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type UsuarioSeed struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// SeedAdmin creates the administrative login when it does not exist yet.
func SeedAdmin(ctx context.Context, db *gorm.DB, usuario, password string) error {
	if strings.TrimSpace(usuario) == "" || password == "" {
		slog.Info("admin seed skipped, ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}
	created, err := authService.NewAuthService(db).EnsureUsuario(ctx, usuario, password)
	if err != nil {
		return err
	}
	if created {
		slog.Info("admin user created", "usuario", usuario)
	} else {
		slog.Info("admin user already present", "usuario", usuario)
	}
	return nil
}

// SeedUsuariosFromJSON reads [{"usuario","password"}] and creates the missing ones.
func SeedUsuariosFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	slog.Info("reading usuarios seed", "file", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []UsuarioSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return err
	}

	svc := authService.NewAuthService(db)
	for _, in := range inputs {
		created, err := svc.EnsureUsuario(ctx, in.Usuario, in.Password)
		switch {
		case err != nil:
			slog.Warn("usuario seed failed", "usuario", in.Usuario, "err", err)
		case created:
			slog.Info("usuario seeded", "usuario", in.Usuario)
		default:
			slog.Info("usuario already present, skipped", "usuario", in.Usuario)
		}
	}
	return nil
}
