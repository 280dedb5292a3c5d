package hosting

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTMXMiddleware logs the HTMX context of partial page updates.
func HTMXMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("HX-Request") != "true" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		slog.Debug("HTMX request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
			"hx_trigger", c.Get("HX-Trigger"),
			"hx_target", c.Get("HX-Target"),
		)
		return err
	}
}

// LogAllRequestsMiddleware logs every request. Client errors such as unknown moods
// are warnings, server errors are errors.
func LogAllRequestsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestType := "api"
		if c.Get("HX-Request") == "true" {
			requestType = "htmx"
		}

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"type", requestType,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", duration.String(),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			slog.Error("HTTP request", append(attrs, "error", err)...)
		case status >= fiber.StatusBadRequest:
			slog.Warn("HTTP request", attrs...)
		default:
			slog.Debug("HTTP request", attrs...)
		}
		return err
	}
}
