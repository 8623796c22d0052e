// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	authModel "clubsocios_backend/internals/features/users/auth/model"
)

func FindUsuarioByUsername(ctx context.Context, db *gorm.DB, usuario string) (*authModel.UsuarioModel, error) {
	var u authModel.UsuarioModel
	if err := db.WithContext(ctx).Where("usuario = ?", usuario).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUsuario(ctx context.Context, db *gorm.DB, u *authModel.UsuarioModel) error {
	return db.WithContext(ctx).Create(u).Error
}

func UpdateUsuarioPassword(ctx context.Context, db *gorm.DB, id uint, hashed string) error {
	return db.WithContext(ctx).Model(&authModel.UsuarioModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
