package ui

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the UI feature.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	ui := app.Group("/ui")
	ui.Get("/", handler.RenderApp)
	ui.Post("/moods/:mood", handler.SelectMood)
	ui.Post("/likes", handler.ToggleLike)
	ui.Post("/theme", handler.ToggleTheme)
	ui.Post("/liked-only", handler.ToggleLikedOnly)
}
