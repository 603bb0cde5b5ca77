// Package handler provides HTTP handlers for the API.
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

// CatalogHandler handles review catalog HTTP requests.
type CatalogHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService, v *validator.Validator, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// ListReviews handles GET /api/v1/reviews
func (h *CatalogHandler) ListReviews(c *fiber.Ctx) error {
	var req dto.ReviewsRequest
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

	catalog, err := h.service.BuildCatalog(c.Context())
	if err != nil {
		h.logger.Error("catalog build failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to build catalog",
			Code:  "INTERNAL_ERROR",
		})
	}

	if req.Category != "" {
		filtered := catalog[:0:0]
		for _, e := range catalog {
			if e.Category == req.Category {
				filtered = append(filtered, e)
			}
		}
		catalog = filtered
	}

	start, end := req.Window(len(catalog))

	return c.JSON(dto.FromCatalog(catalog[start:end], len(catalog)))
}

// GetReview handles GET /api/v1/reviews/:slug
func (h *CatalogHandler) GetReview(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "slug is required",
			Code:  "MISSING_SLUG",
		})
	}

	doc, err := h.service.GetReview(slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "review not found",
				Code:  "NOT_FOUND",
			})
		}

		h.logger.Error("get review failed", zap.String("slug", slug), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to load review",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDocument(doc))
}

// GetProduct handles GET /api/v1/products/:asin
// Remote lookup failures surface as 404, never as errors: the lookup
// path is fault tolerant by contract.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	asin := c.Params("asin")
	if asin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "asin is required",
			Code:  "MISSING_ASIN",
		})
	}

	product, err := h.service.LookupProduct(c.Context(), asin)
	if err != nil || product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "product not found",
			Code:  "NOT_FOUND",
		})
	}

	return c.JSON(dto.FromProduct(product))
}
