// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"clubsocios_backend/internals/constants"
	helper "clubsocios_backend/internals/helpers"

	"github.com/golang-jwt/jwt/v4"
)

const TokenType = "Bearer"

type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

var errNoSecret = errors.New("JWT_SECRET no configurado")

// IssueToken signs an HS256 access token for usuario valid for ttl from now.
func IssueToken(secret, usuario string, ttl time.Duration, now time.Time) (IssuedToken, error) {
	if strings.TrimSpace(secret) == "" {
		return IssuedToken{}, errNoSecret
	}
	exp := now.Add(ttl).UTC().Truncate(time.Second)
	claims := Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{AccessToken: signed, TokenType: TokenType, ExpiresAt: exp}, nil
}

// ParseToken accepts only HS256 tokens that carry an unexpired exp and a usuario claim.
func ParseToken(secret, raw string) (*Claims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, helper.ErrInternal(constants.MsgErrorInterno, errNoSecret)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, helper.ErrAuth(constants.MsgTokenInvalido)
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, helper.ErrAuth(constants.MsgTokenInvalido).WithCause(err)
	}
	if claims.ExpiresAt == nil || strings.TrimSpace(claims.Usuario) == "" {
		return nil, helper.ErrAuth(constants.MsgTokenInvalido)
	}
	return claims, nil
}
