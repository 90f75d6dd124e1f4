package server

import (
	"path/filepath"
	"strings"

	"ai-chat-workspace-be/internal/bootstrap"
	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, Location",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Every request passes the gate before reaching a route.
	app.Use(serverutils.GateMiddleware(container.Gate, container.GateOptions, container.Logger))

	// Routes
	registerRoutes(app, container)

	// Frontend
	registerFrontend(app, cfg.App.StaticDir)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.PublicController.RegisterRoutes(api)
	c.AuthController.RegisterRoutes(api)
	c.WorkspaceController.RegisterRoutes(api)

	c.WorkspaceEventHandler.RegisterRoutes(app)
}

// registerFrontend serves the built single page app. Unknown page paths get
// index.html so client-side routing can take over.
func registerFrontend(app *fiber.App, staticDir string) {
	if staticDir == "" {
		return
	}

	app.Static("/", staticDir)

	index := filepath.Join(staticDir, "index.html")
	app.Get("/*", func(ctx *fiber.Ctx) error {
		path := ctx.Path()
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/ws/") {
			return fiber.ErrNotFound
		}
		return ctx.SendFile(index)
	})
}
