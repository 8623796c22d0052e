package seeds

import (
	"context"

	"clubsocios_backend/internals/configs"
	users "clubsocios_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds is idempotent; existing usuarios are left untouched.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	if err := users.SeedAdmin(ctx, db, configs.AdminUsername, configs.AdminPassword); err != nil {
		return err
	}
	if file := configs.GetEnv("SEED_USUARIOS_FILE"); file != "" {
		if err := users.SeedUsuariosFromJSON(ctx, db, file); err != nil {
			return err
		}
	}
	return nil
}
