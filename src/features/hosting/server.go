package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/zenify/src/features/catalog"
	"github.com/contre95/zenify/src/features/config"
	"github.com/contre95/zenify/src/features/metrics"
	"github.com/contre95/zenify/src/features/preview"
	"github.com/contre95/zenify/src/features/ui"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server. A nil collectors disables the metrics endpoint.
func NewServer(cfg *config.Manager, catalogService *catalog.Service, previewService *preview.Service, uiHandler *ui.Handler, collectors *metrics.Collectors) *Server {
	engine := ui.NewEngine("./views", cfg.Get().Logger.Level == "debug")
	app := newApp(cfg, engine)

	app.Static("/", "./public")

	catalog.RegisterRoutes(app, catalogService)
	preview.RegisterRoutes(app, previewService)
	ui.RegisterRoutes(app, uiHandler)
	config.RegisterRoutes(app, cfg)
	if collectors != nil {
		metrics.RegisterRoutes(app, collectors)
	}

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// newApp builds the fiber app with the shared middleware stack.
func newApp(cfg *config.Manager, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		Views: views,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				slog.Error("Internal Server Error", "error", err)
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
		AppName:               "Zenify",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Get().Server.AllowOrigins,
	}))
	app.Use(HTMXMiddleware())
	app.Use(LogAllRequestsMiddleware())
	return app
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
