package catalog

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/contre95/zenify/src/music"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the catalog feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the catalog feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Status answers the liveness probe.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.SendString("API is running")
}

// GetSongs returns the full mood -> songs mapping.
func (h *Handler) GetSongs(c *fiber.Ctx) error {
	slog.Debug("GetSongs handler called")
	return c.JSON(h.service.ListAll())
}

// PathParam returns the percent-decoded route parameter. Invalid escapes are kept as sent.
func PathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// GetSongsByMood returns the songs for the mood in the path.
func (h *Handler) GetSongsByMood(c *fiber.Ctx) error {
	mood := PathParam(c, "mood")
	slog.Debug("GetSongsByMood handler called", "mood", mood)

	songs, err := h.service.ListByMood(mood)
	if errors.Is(err, music.ErrMoodNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(songs)
}
