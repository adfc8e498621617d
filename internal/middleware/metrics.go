package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hoopline_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// EmailDeliveries counts newsletter email deliveries by outcome. Delivery is
// best-effort, so failures show up here rather than in HTTP error rates.
var EmailDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hoopline_email_deliveries_total",
	Help: "Total number of newsletter email delivery attempts by outcome",
}, []string{"kind", "outcome"})

// LikeToggles counts engagement toggles by target type and direction.
var LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hoopline_like_toggles_total",
	Help: "Total number of like toggles by target and resulting state",
}, []string{"target", "liked"})

// InitMetrics creates the fiberprometheus middleware for HTTP-level metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware adapts the fiberprometheus handler into a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
