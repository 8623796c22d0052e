package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubsocios_backend/internals/configs"
	database "clubsocios_backend/internals/databases"
	authService "clubsocios_backend/internals/features/users/auth/service"
	helper "clubsocios_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
	Errors     map[string][]string `json:"errors"`
}

func newClient(t *testing.T) *apiClient {
	t.Helper()
	prevSecret, prevCost, prevPrefix := configs.JWTSecret, configs.BcryptCost, configs.APIPrefix
	configs.JWTSecret, configs.BcryptCost, configs.APIPrefix = "route-test-secret", 4, "/api"
	t.Cleanup(func() {
		configs.JWTSecret, configs.BcryptCost, configs.APIPrefix = prevSecret, prevCost, prevPrefix
	})

	db := database.OpenTestDB(t, AllModels()...)
	_, err := authService.NewAuthService(db).EnsureUsuario(context.Background(), "admin", "secreta")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, db, nil)
	return &apiClient{t: t, app: app}
}

func (a *apiClient) do(method, path, body string) (int, envelope) {
	a.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(a.t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (a *apiClient) login() {
	a.t.Helper()
	status, env := a.do(http.MethodPost, "/api/auth/login", `{"usuario":"admin","password":"secreta"}`)
	require.Equal(a.t, fiber.StatusOK, status, env.Message)
	var tok authService.IssuedToken
	require.NoError(a.t, sonic.Unmarshal(env.Data, &tok))
	require.NotEmpty(a.t, tok.AccessToken)
	a.token = tok.AccessToken
}

func (a *apiClient) createSocio(nombre, apellido, dni string) uint {
	a.t.Helper()
	body := fmt.Sprintf(`{"nombre":%q,"apellido":%q,"dni":%q,"fechaNacimiento":"1990-04-02"}`, nombre, apellido, dni)
	status, env := a.do(http.MethodPost, "/api/socios", body)
	require.Equal(a.t, fiber.StatusCreated, status, env.Message)
	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(a.t, sonic.Unmarshal(env.Data, &out))
	return out.ID
}

func (a *apiClient) createTemporada(nombre, ini, fin string) uint {
	a.t.Helper()
	body := fmt.Sprintf(`{"nombre":%q,"fechaInicio":%q,"fechaFin":%q}`, nombre, ini, fin)
	status, env := a.do(http.MethodPost, "/api/temporadas", body)
	require.Equal(a.t, fiber.StatusCreated, status, env.Message)
	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(a.t, sonic.Unmarshal(env.Data, &out))
	return out.ID
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := newClient(t)

	status, env := a.do(http.MethodGet, "/api/socios", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, env.Success)

	a.token = "garbage"
	status, _ = a.do(http.MethodGet, "/api/temporadas", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = a.do(http.MethodPost, "/api/auth/login", `{"usuario":"admin","password":"mala"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	a.token = ""
	a.login()
	status, _ = a.do(http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestHealth(t *testing.T) {
	a := newClient(t)
	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSocioLifecycle(t *testing.T) {
	a := newClient(t)
	a.login()

	id := a.createSocio("Ana", "Pérez", "12345678")

	status, env := a.do(http.MethodPost, "/api/socios",
		`{"nombre":"Otra","apellido":"Persona","dni":"12345678","fechaNacimiento":"1991-01-01"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, env.Message)

	status, env = a.do(http.MethodGet, "/api/socios?search=p%C3%A9r", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, env.Total)

	status, env = a.do(http.MethodPut, fmt.Sprintf("/api/socios/%d", id), `{"telefono":"1155550000"}`)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var socio struct {
		Nombre   string  `json:"nombre"`
		Telefono *string `json:"telefono"`
		Estado   string  `json:"estado"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &socio))
	assert.Equal(t, "Ana", socio.Nombre)
	require.NotNil(t, socio.Telefono)
	assert.Equal(t, "ACTIVO", socio.Estado)

	status, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/socios/%d", id), "")
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = a.do(http.MethodGet, fmt.Sprintf("/api/socios/%d", id), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = a.do(http.MethodGet, "/api/socios/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSeasonMembership(t *testing.T) {
	a := newClient(t)
	a.login()

	ana := a.createSocio("Ana", "Pérez", "12345678")
	luis := a.createSocio("Luis", "Gomez", "22345678")
	temp := a.createTemporada("Verano", "2025-12-01", "2026-03-31")

	status, env := a.do(http.MethodPost, fmt.Sprintf("/api/temporadas/%d/socios", temp), fmt.Sprintf(`{"socioId":%d}`, ana))
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	status, _ = a.do(http.MethodPost, fmt.Sprintf("/api/temporadas/%d/socios", temp), fmt.Sprintf(`{"socioId":%d}`, ana))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = a.do(http.MethodGet, fmt.Sprintf("/api/temporadas/%d/socios-disponibles", temp), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, env.Total)
	var disponibles []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &disponibles))
	require.Len(t, disponibles, 1)
	assert.Equal(t, luis, disponibles[0].ID)

	status, env = a.do(http.MethodGet, fmt.Sprintf("/api/temporadas/%d/socios", temp), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"socioId":`+fmt.Sprint(ana))

	status, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/temporadas/%d/socios/%d", temp, luis), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/temporadas/%d/socios/%d", temp, ana), "")
	assert.Equal(t, fiber.StatusOK, status)

	status, env = a.do(http.MethodGet, fmt.Sprintf("/api/temporadas/%d/socios-disponibles", temp), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, env.Total)
}

func TestAvailableMembersPagePastEnd(t *testing.T) {
	a := newClient(t)
	a.login()

	for i := 0; i < 5; i++ {
		a.createSocio(fmt.Sprintf("Socio%d", i), "Apellido", fmt.Sprintf("3000000%d", i))
	}
	temp := a.createTemporada("Invierno", "2026-06-01", "2026-08-31")

	status, env := a.do(http.MethodGet, fmt.Sprintf("/api/temporadas/%d/socios-disponibles?page=2&limit=10", temp), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", string(env.Data))
	assert.EqualValues(t, 5, env.Total)
	assert.Equal(t, 2, env.Page)
	assert.Equal(t, 1, env.TotalPages)

	status, _ = a.do(http.MethodGet, "/api/temporadas/999/socios-disponibles", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTemporadaRejectsInvertedRange(t *testing.T) {
	a := newClient(t)
	a.login()

	status, env := a.do(http.MethodPost, "/api/temporadas", `{"nombre":"Mal","fechaInicio":"2026-03-01","fechaFin":"2026-01-01"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestVisitorEntryAndStats(t *testing.T) {
	a := newClient(t)
	a.login()

	status, env := a.do(http.MethodPost, "/api/registro-ingreso",
		`{"tipoIngreso":"NO_SOCIO","dni":"40222333","metodoPago":"EFECTIVO","importe":1500}`)
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	status, env = a.do(http.MethodPost, "/api/registro-ingreso", `{"tipoIngreso":"NO_SOCIO"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, env.Errors, "importe")

	status, env = a.do(http.MethodGet, "/api/registro-ingreso?tipo=NO_SOCIO", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, env.Total)

	status, _ = a.do(http.MethodGet, "/api/registro-ingreso?tipo=OTRO", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = a.do(http.MethodGet, "/api/estadisticas/resumen", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"ingresosHoy":1`)
}
