package handlers

import (
	"net/http"
	"strconv"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.AddComment)
	g.GET("/posts/:post_id/comments", h.ListComments)
	g.PUT("/comments/:comment_id", h.UpdateComment)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
}

// AddComment creates a comment on a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Add(c.Request().Context(), c.Param("post_id"), currentUserID(c), currentDisplayName(c), req.Content)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments returns a post's comments, newest first. An optional limit
// query param bounds the result; the default returns everything.
func (h *CommentHandler) ListComments(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	comments, err := h.commentService.List(c.Request().Context(), c.Param("post_id"), limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment edits a comment owned by the caller
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Update(c.Request().Context(), c.Param("comment_id"), currentUserID(c), req.Content)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment owned by the caller
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	err := h.commentService.Delete(c.Request().Context(), c.Param("comment_id"), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
