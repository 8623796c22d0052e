package helper

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindProbe struct {
	Nombre string  `json:"nombre" form:"nombre" validate:"required,max=10"`
	Email  *string `json:"email" form:"email" validate:"omitempty,email"`
}

func (p *bindProbe) Normalize() {
	p.Nombre = strings.TrimSpace(p.Nombre)
	if p.Email != nil && strings.TrimSpace(*p.Email) == "" {
		p.Email = nil
	}
}

func newBindApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var req bindProbe
		if err := BindStrict(c, &req); err != nil {
			return err
		}
		return JsonCreated(c, "", req)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ErrInternal("Error obteniendo datos", errors.New("connection refused"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ErrNotFound("Socio no encontrado")
	})
	return app
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var out ErrorResponse
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestBindStrict_JSON(t *testing.T) {
	app := newBindApp()

	status, body := postJSON(t, app, `{"nombre":"  Ana ","email":""}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, `"nombre":"Ana"`)
	assert.Contains(t, body, `"email":null`)

	status, _ = postJSON(t, app, `{"nombre":"Ana","rol":"admin"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = postJSON(t, app, `{"nombre":"","email":"no-es-mail"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	out := decodeError(t, strings.NewReader(body))
	assert.False(t, out.Success)
	assert.Equal(t, "BAD_REQUEST", out.ErrorCode)
	assert.Contains(t, out.Errors, "nombre")
	assert.Contains(t, out.Errors, "email")
}

func TestBindStrict_FormRejectsUnknownKeys(t *testing.T) {
	app := newBindApp()

	req := httptest.NewRequest("POST", "/", strings.NewReader("nombre=Ana&dni=123"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeError(t, resp.Body)
	assert.Contains(t, out.Message, "dni")
}

func TestErrorHandler_Kinds(t *testing.T) {
	app := newBindApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	out := decodeError(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", out.ErrorCode)
	assert.NotContains(t, out.Message, "connection refused")

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Socio no encontrado", decodeError(t, resp.Body).Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp.Body).ErrorCode)
}

func TestGetRawAccessToken(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRawAccessToken(c)
		return nil
	})

	cases := map[string]string{
		"Bearer abc.def":     "abc.def",
		"bearer   \"abc\"":   "abc",
		"Basic dXNlcjpwYXNz": "",
		"":                   "",
	}
	for header, want := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, got, header)
	}
}
