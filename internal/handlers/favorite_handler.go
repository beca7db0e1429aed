package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler handles HTTP requests related to favorite posts
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/favorite", h.ToggleFavorite)
	g.GET("/me/favorites", h.GetFavorites)
}

// ToggleFavorite flips the caller's favorite on a post
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	favored, err := h.favoriteService.ToggleFavorite(c.Request().Context(), c.Param("post_id"), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"favorited": favored})
}

// GetFavorites returns the ids of the posts the caller has favorited
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	postIDs, err := h.favoriteService.Favorites(c.Request().Context(), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_ids": postIDs})
}
