package metrics

import (
	"errors"
	"strconv"
	"time"

	helper "clubsocios_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is private to the service so tests can gather it without the
// default process collectors of other packages.
var Registry = prometheus.NewRegistry()

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests processed",
	}, []string{"method", "route", "status"})

	latencyHist = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// IngresosTotal counts registered gate entries by tipo_ingreso.
	IngresosTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "club_ingresos_total",
		Help: "Entries registered at the club gate",
	}, []string{"tipo"})
)

func init() {
	Registry.MustRegister(
		requestCounter,
		latencyHist,
		IngresosTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordIngreso is called once per persisted entry.
func RecordIngreso(tipo string) {
	IngresosTotal.WithLabelValues(tipo).Inc()
}

// Middleware records count and latency per matched route template, so
// "/api/socios/:id" stays one series whatever the id.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var ae *helper.AppError
			var fe *fiber.Error
			switch {
			case errors.As(err, &ae):
				status = ae.Status
			case errors.As(err, &fe):
				status = fe.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		method := c.Method()

		requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		latencyHist.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
