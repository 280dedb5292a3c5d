package config

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

// GetConfig returns the current configuration in the requested format.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	format := c.Query("fmt", "yaml")
	slog.Debug("GetConfig handler called", "format", format)

	switch format {
	case "yaml":
		c.Set("Content-Type", "text/yaml")
		return c.SendString(h.configManager.GetYAML())
	case "json":
		c.Set("Content-Type", "application/json")
		return c.SendString(h.configManager.GetJSON())
	default:
		return c.Status(fiber.StatusBadRequest).SendString("Invalid format. Use 'json' or 'yaml'")
	}
}
