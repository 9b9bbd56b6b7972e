package bucketlist

import (
	"errors"

	"github.com/dorsabag/bucketListBackendDeploy/core/logger"
	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
	"github.com/dorsabag/bucketListBackendDeploy/feature/bucketlist/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bucket list items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket list routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/categories", h.HandleListCategories)
	api.Post("/categories/:category/items", h.HandleCreateItem)
	api.Get("/categories/:category/items", h.HandleListItems)
	api.Put("/categories/:category/items/:id", h.HandleUpdateItem)
	api.Delete("/categories/:category/items/:id", h.HandleDeleteItem)
	api.Get("/categories/tv_shows/items/:id/episodes", h.HandleShowEpisodes)
	api.Get("/categories/around_world/items/:id/cities", h.HandleCountryCities)
	api.Post("/admin/add-image-properties", h.HandleAddImageProperties)
}

// HandleCreateItem creates a new bucket list item in the given category.
func (h *Handler) HandleCreateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.category(c)
	if err != nil {
		return h.respondError(c, l, err)
	}

	var item models.ItemCreate
	if err := c.BodyParser(&item); err != nil {
		return h.respondError(c, l, &ValidationError{Message: "invalid request body: " + err.Error()})
	}

	rec, err := h.service.Create(c.Context(), category, &item)
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully created " + string(category) + " item",
		"item":    rec,
	})
}

// HandleListItems returns items for a category, newest pagination drained up
// to the requested limit.
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.category(c)
	if err != nil {
		return h.respondError(c, l, err)
	}

	limit := c.QueryInt("limit", DefaultListLimit)
	res, err := h.service.List(c.Context(), category, limit)
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": res.Category,
		"items":    res.Items,
		"count":    res.Count,
		"has_more": res.HasMore,
	})
}

// HandleUpdateItem applies a partial update to an item.
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.category(c)
	if err != nil {
		return h.respondError(c, l, err)
	}
	itemID := c.Params("id")

	var item models.ItemUpdate
	if err := c.BodyParser(&item); err != nil {
		return h.respondError(c, l, &ValidationError{Message: "invalid request body: " + err.Error()})
	}

	rec, err := h.service.Update(c.Context(), category, itemID, &item)
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully updated " + string(category) + " item",
		"item":    rec,
	})
}

// HandleDeleteItem archives an item.
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.category(c)
	if err != nil {
		return h.respondError(c, l, err)
	}
	itemID := c.Params("id")

	if err := h.service.Archive(c.Context(), category, itemID); err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully deleted " + string(category) + " item",
	})
}

// HandleShowEpisodes returns the episodes heuristically matched to a show.
func (h *Handler) HandleShowEpisodes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Episodes(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"show_id":   res.ParentID,
		"show_name": res.ParentTitle,
		"episodes":  res.Items,
		"count":     res.Count,
	})
}

// HandleCountryCities returns the city items heuristically matched to a
// country.
func (h *Handler) HandleCountryCities(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Cities(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"country_id":   res.ParentID,
		"country_name": res.ParentTitle,
		"cities":       res.Items,
		"count":        res.Count,
	})
}

// HandleListCategories returns the public category catalogue.
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	categories := make(map[string]fiber.Map)
	for _, cat := range Categories() {
		desc := descriptors[cat]
		if !desc.Listed {
			continue
		}
		categories[string(cat)] = fiber.Map{
			"name":        desc.Name,
			"description": desc.Description,
			"icon":        desc.Icon,
		}
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
		"count":      len(categories),
	})
}

// HandleAddImageProperties retrofits Image properties onto the legacy
// databases.
func (h *Handler) HandleAddImageProperties(c *fiber.Ctx) error {
	results := h.service.AddImageProperties(c.Context())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image property addition completed",
		"results": results,
	})
}

func (h *Handler) category(c *fiber.Ctx) (Category, error) {
	category := Category(c.Params("category"))
	if !Known(category) {
		return "", &UnknownCategoryError{Category: string(category)}
	}
	return category, nil
}

// respondError maps the error taxonomy onto HTTP statuses, preserving the
// underlying message.
func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var (
		validation     *ValidationError
		unknown        *UnknownCategoryError
		notProvisioned *NotProvisionedError
		rateLimited    *notion.RateLimitedError
		upstream       *notion.UpstreamError
	)

	status := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &validation), errors.As(err, &unknown), errors.As(err, &notProvisioned):
		status = fiber.StatusBadRequest
	case errors.As(err, &rateLimited):
		status = fiber.StatusTooManyRequests
	case errors.As(err, &upstream):
		status = fiber.StatusBadGateway
	}

	if status >= 500 {
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Warn("Request rejected", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
