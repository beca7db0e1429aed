package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.GET("/me/likes", h.GetLikedPosts)
}

// ToggleLike flips the caller's like on a post and returns the new state.
// The returned count is an optimistic projection, not a confirmed server
// value.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	state, err := h.likeService.ToggleLike(c.Request().Context(), c.Param("post_id"), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, state)
}

// GetLikedPosts returns the ids of the posts the caller has liked
func (h *LikeHandler) GetLikedPosts(c echo.Context) error {
	postIDs, err := h.likeService.LikedPosts(c.Request().Context(), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_ids": postIDs})
}
