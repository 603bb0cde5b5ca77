package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gear-catalog-service/internal/app/service"
)

// PageHandler renders server-side HTML pages.
type PageHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(catalog *service.CatalogService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Home handles GET /
// Renders the review listing page using Fiber's template engine.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	catalog, err := h.catalog.BuildCatalog(c.Context())
	if err != nil {
		h.logger.Error("home page catalog build failed", zap.Error(err))

		return fiber.NewError(fiber.StatusInternalServerError, "catalog unavailable")
	}

	return c.Render("pages/home", fiber.Map{
		"Title":   "Latest Gear Reviews",
		"Reviews": catalog,
		"Total":   len(catalog),
	}, "layouts/base")
}
