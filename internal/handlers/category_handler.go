package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// CategoryHandler handles category HTTP requests. Reads are public to
// authenticated users; writes live under the admin group.
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepository: categoryRepo}
}

// RegisterCategoryRoutes registers the read-side category routes
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:category_id", h.GetCategory)
}

// RegisterAdminRoutes registers the admin console's category management
func (h *CategoryHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/categories", h.CreateCategory)
	g.PUT("/categories/:category_id", h.UpdateCategory)
	g.DELETE("/categories/:category_id", h.DeleteCategory)
}

// ListCategories returns all categories ordered by name
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepository.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryRepository.GetByID(c.Request().Context(), c.Param("category_id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{Name: req.Name, Description: req.Description, ImageURL: req.ImageURL}
	if err := h.categoryRepository.Create(c.Request().Context(), category); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates category fields
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.ImageURL != "" {
		fields["image_url"] = req.ImageURL
	}
	id := c.Param("category_id")
	if err := h.categoryRepository.Update(c.Request().Context(), id, fields); err != nil {
		return serviceError(err)
	}

	category, err := h.categoryRepository.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryRepository.Delete(c.Request().Context(), c.Param("category_id")); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
