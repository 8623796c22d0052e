package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(Middleware())
	app.Get("/socios/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "0" {
			return helper.ErrNotFound("Socio no encontrado")
		}
		return c.SendString("ok")
	})
	app.Get("/metrics", Handler())
	return app
}

func TestMiddleware_LabelsByRouteTemplate(t *testing.T) {
	app := newApp()
	ok := requestCounter.WithLabelValues("GET", "/socios/:id", "200")
	missing := requestCounter.WithLabelValues("GET", "/socios/:id", "404")
	okBefore, missingBefore := testutil.ToFloat64(ok), testutil.ToFloat64(missing)

	for _, path := range []string{"/socios/1", "/socios/2", "/socios/0"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(missing))
}

func TestHandler_ExposesClubCounters(t *testing.T) {
	app := newApp()
	RecordIngreso("NO_SOCIO")
	_, err := app.Test(httptest.NewRequest("GET", "/socios/7", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `club_ingresos_total{tipo="NO_SOCIO"}`)
	assert.Contains(t, string(body), "http_requests_total")
}
