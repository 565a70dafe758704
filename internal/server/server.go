package server

import (
	"context"
	"log"

	"speedpress-addons-be/internal/bootstrap"
	"speedpress-addons-be/internal/config"
	"speedpress-addons-be/internal/pkg/serverutils"

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
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.AddonController.RegisterRoutes(api)
	c.ProductController.RegisterAdminRoutes(api)
	c.DashboardHandler.RegisterRoutes(api)

	// Addons attach middleware and routes to the storefront group before the
	// storefront controllers register, so their middleware runs first.
	store := app.Group("/store")
	loaded, err := c.LoadAddons(context.Background(), store)
	if err != nil {
		log.Printf("[WARN] Failed to load addons: %v", err)
	} else {
		log.Printf("Loaded %d addon(s)", len(loaded))
	}

	c.ProductController.RegisterStorefrontRoutes(store)
	c.CartController.RegisterRoutes(store)
	c.CheckoutController.RegisterRoutes(store)
}
