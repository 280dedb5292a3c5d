package preview

import "github.com/gofiber/fiber/v2"

// RegisterRoutes registers the preview routes
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)
	app.Get("/api/preview", handler.GetPreview)
}
