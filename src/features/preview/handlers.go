package preview

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler handles preview requests
type Handler struct {
	service *Service
}

// NewHandler creates a new preview handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPreview returns the preview URL of a song as JSON, or an <audio> fragment for HTMX requests.
func (h *Handler) GetPreview(c *fiber.Ctx) error {
	title := c.Query("title")
	artist := c.Query("artist")
	slog.Debug("GetPreview handler called", "title", title, "artist", artist)

	if strings.TrimSpace(title+artist) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title or artist is required"})
	}

	previewURL, err := h.service.GetPreview(c.Context(), title, artist)
	switch {
	case errors.Is(err, ErrDisabled), errors.Is(err, ErrNoPreview):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case err != nil:
		slog.Error("Failed to get preview", "title", title, "artist", artist, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "preview lookup failed"})
	}

	if c.Get("HX-Request") == "true" {
		return c.Render("playlist/preview", fiber.Map{
			"PreviewURL": previewURL,
		})
	}
	return c.JSON(fiber.Map{"previewUrl": previewURL})
}
