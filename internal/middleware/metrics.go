package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sewsmart_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// OrdersCreated counts successfully created orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sewsmart_orders_created_total",
		Help: "Total number of orders created",
	})

	// ImageUploads counts object storage uploads by outcome.
	ImageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sewsmart_image_uploads_total",
		Help: "Total number of post image uploads by outcome",
	}, []string{"outcome"})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the HTTP metrics collection handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
