package user

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"clubsocios_backend/internals/configs"
	database "clubsocios_backend/internals/databases"
	authModel "clubsocios_backend/internals/features/users/auth/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedUsuariosFromJSON_IsIdempotent(t *testing.T) {
	prev := configs.BcryptCost
	configs.BcryptCost = 4
	t.Cleanup(func() { configs.BcryptCost = prev })

	db := database.OpenTestDB(t, &authModel.UsuarioModel{})
	path := filepath.Join(t.TempDir(), "usuarios.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"usuario":"portero","password":"uno"},
		{"usuario":"tesoreria","password":"dos"},
		{"usuario":"","password":"sin-usuario"}
	]`), 0o600))

	ctx := context.Background()
	require.NoError(t, SeedUsuariosFromJSON(ctx, db, path))
	require.NoError(t, SeedUsuariosFromJSON(ctx, db, path))
	require.NoError(t, SeedAdmin(ctx, db, "portero", "otra"))
	require.NoError(t, SeedAdmin(ctx, db, "", ""))

	var n int64
	require.NoError(t, db.Model(&authModel.UsuarioModel{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestSeedUsuariosFromJSON_MissingFile(t *testing.T) {
	db := database.OpenTestDB(t, &authModel.UsuarioModel{})
	err := SeedUsuariosFromJSON(context.Background(), db, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
