package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes exposes the collectors in the Prometheus text format.
func RegisterRoutes(app *fiber.App, c *Collectors) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))
}
