package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gear-catalog-service/internal/app/service"
	"gear-catalog-service/internal/domain"
	"gear-catalog-service/internal/transport/httpserver/dto"
	"gear-catalog-service/internal/validator"
)

// GuideHandler handles guide collection HTTP requests.
type GuideHandler struct {
	service   *service.GuideService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewGuideHandler creates a new GuideHandler.
func NewGuideHandler(svc *service.GuideService, v *validator.Validator, logger *zap.Logger) *GuideHandler {
	return &GuideHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// ListGuides handles GET /api/v1/guides
func (h *GuideHandler) ListGuides(c *fiber.Ctx) error {
	var req dto.GuidesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	guides, err := h.service.Filter(req.Category, req.Query)
	if err != nil {
		h.logger.Error("guide listing failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to list guides",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromGuides(guides))
}

// GetGuide handles GET /api/v1/guides/:slug
func (h *GuideHandler) GetGuide(c *fiber.Ctx) error {
	slug := c.Params("slug")

	doc, err := h.service.Get(slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "guide not found",
				Code:  "NOT_FOUND",
			})
		}

		h.logger.Error("get guide failed", zap.String("slug", slug), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to load guide",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDocument(doc))
}

// ListCategories handles GET /api/v1/guides/categories
func (h *GuideHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		h.logger.Error("category listing failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to list categories",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.CategoriesResponse{Categories: categories})
}
