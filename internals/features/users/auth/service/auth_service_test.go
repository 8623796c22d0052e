package service

import (
	"context"
	"testing"
	"time"

	"clubsocios_backend/internals/constants"
	database "clubsocios_backend/internals/databases"
	authHelper "clubsocios_backend/internals/features/users/auth/helper"
	authModel "clubsocios_backend/internals/features/users/auth/model"
	helper "clubsocios_backend/internals/helpers"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	db := database.OpenTestDB(t, &authModel.UsuarioModel{})
	svc := &AuthService{DB: db, Secret: testSecret, TTL: time.Hour, Cost: 4, Now: time.Now}
	created, err := svc.EnsureUsuario(context.Background(), "admin", "secreta")
	require.NoError(t, err)
	require.True(t, created)
	return svc
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	tok, err := svc.Login(context.Background(), "admin", "secreta")
	require.NoError(t, err)
	assert.Equal(t, TokenType, tok.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)

	claims, err := ParseToken(testSecret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Usuario)
	require.NotNil(t, claims.IssuedAt)
}

func TestLogin_UnknownUserIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nadie", "secreta")
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
	assert.Contains(t, err.Error(), constants.MsgUsuarioNoEncontrado)
}

func TestLogin_WrongPasswordIsAuth(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "admin", "otra")
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindAuth))
	assert.Contains(t, err.Error(), constants.MsgPasswordIncorrecta)
}

func TestGeneratePasswordHash(t *testing.T) {
	svc := &AuthService{Cost: 4}

	h, err := svc.GeneratePasswordHash("clave")
	require.NoError(t, err)
	assert.NoError(t, authHelper.CheckPasswordHash(h, "clave"))
	assert.Error(t, authHelper.CheckPasswordHash(h, "otra"))

	_, err = svc.GeneratePasswordHash("")
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestAuthenticate_RefetchesUser(t *testing.T) {
	svc := newTestService(t)
	tok, err := svc.Login(context.Background(), "admin", "secreta")
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Usuario)

	// removed users lose access even with a valid token
	require.NoError(t, svc.DB.Where("usuario = ?", "admin").Delete(&authModel.UsuarioModel{}).Error)
	_, err = svc.Authenticate(context.Background(), tok.AccessToken)
	assert.True(t, helper.IsKind(err, helper.KindAuth))
}

func TestParseToken_Rejections(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	expired, err := IssueToken(testSecret, "admin", time.Hour, past)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"usuario": "admin"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Usuario:          "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	good, err := IssueToken(testSecret, "admin", time.Hour, time.Now())
	require.NoError(t, err)

	cases := map[string]struct {
		secret string
		raw    string
	}{
		"expired":      {testSecret, expired.AccessToken},
		"no exp":       {testSecret, noExp},
		"hs512":        {testSecret, otherAlg},
		"wrong secret": {"otro", good.AccessToken},
		"garbage":      {testSecret, "abc.def.ghi"},
		"empty":        {testSecret, ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.secret, tc.raw)
			assert.True(t, helper.IsKind(err, helper.KindAuth), "got %v", err)
		})
	}
}

func TestEnsureUsuario_Idempotent(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.EnsureUsuario(context.Background(), "admin", "nueva")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.Login(context.Background(), "admin", "secreta")
	assert.NoError(t, err)
}
