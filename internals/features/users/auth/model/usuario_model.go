package model

import (
	"strings"

	"gorm.io/gorm"
)

type UsuarioModel struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Usuario  string `gorm:"column:usuario;type:varchar(100);not null;uniqueIndex:idx_usuarios_usuario" json:"usuario"`
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`
}

func (UsuarioModel) TableName() string { return "usuarios" }

func (u *UsuarioModel) BeforeSave(tx *gorm.DB) error {
	u.Usuario = strings.TrimSpace(u.Usuario)
	return nil
}
