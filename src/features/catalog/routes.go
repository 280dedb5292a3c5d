package catalog

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the catalog feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Get("/", handler.Status)

	api := app.Group("/api")
	api.Get("/songs", handler.GetSongs)
	api.Get("/songs/:mood", handler.GetSongsByMood)
}
