// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"gear-catalog-service/internal/app/service"
	"gear-catalog-service/internal/transport/httpserver/handler"
	"gear-catalog-service/internal/transport/httpserver/middleware"
	"gear-catalog-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port       int
	BodyLimit  int
	Debug      bool
	ReviewsDir string
	SiteURL    string
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	catalogSvc *service.CatalogService,
	guideSvc *service.GuideService,
	sitemapSvc *service.SitemapService,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	// Template engine for server-rendered pages
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:      "gear-catalog-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(cfg.ReviewsDir))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(cors.New())
	app.Use(compress.New())

	// Static files
	app.Static("/static", "./web/static")

	// Create handlers
	catalogHandler := handler.NewCatalogHandler(catalogSvc, v, logger)
	guideHandler := handler.NewGuideHandler(guideSvc, v, logger)
	sitemapHandler := handler.NewSitemapHandler(sitemapSvc, cfg.SiteURL, logger)
	pageHandler := handler.NewPageHandler(catalogSvc, logger)

	registerRoutes(app, catalogHandler, guideHandler, sitemapHandler, pageHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all routes.
func registerRoutes(
	app *fiber.App,
	catalogHandler *handler.CatalogHandler,
	guideHandler *handler.GuideHandler,
	sitemapHandler *handler.SitemapHandler,
	pageHandler *handler.PageHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// Crawler-facing documents
	app.Get("/sitemap.xml", sitemapHandler.Sitemap)
	app.Get("/robots.txt", sitemapHandler.Robots)

	// Server-rendered pages
	app.Get("/", pageHandler.Home)

	// API v1 routes
	v1 := app.Group("/api/v1")

	reviews := v1.Group("/reviews")
	reviews.Get("/", catalogHandler.ListReviews)
	reviews.Get("/:slug", catalogHandler.GetReview)

	guides := v1.Group("/guides")
	guides.Get("/", guideHandler.ListGuides)
	guides.Get("/categories", guideHandler.ListCategories)
	guides.Get("/:slug", guideHandler.GetGuide)

	v1.Get("/products/:asin", catalogHandler.GetProduct)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
