package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetFeed)
	g.GET("/posts/:post_id", h.GetPost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/users/:user_id/posts", h.GetPostsByUser)
	g.GET("/categories/:category_id/posts", h.GetPostsByCategory)
	g.GET("/hashtags/:hashtag/posts", h.GetPostsByHashtag)
}

// CreatePost handles creating a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), currentUserID(c), currentDisplayName(c), &req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetFeed returns the paginated post feed, newest first
func (h *PostHandler) GetFeed(c echo.Context) error {
	skip, limit := paging(c)
	posts, err := h.postService.Feed(c.Request().Context(), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post owned by the caller
func (h *PostHandler) DeletePost(c echo.Context) error {
	err := h.postService.Delete(c.Request().Context(), c.Param("post_id"), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPostsByUser returns a user's posts
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	skip, limit := paging(c)
	posts, err := h.postService.ByAuthor(c.Request().Context(), c.Param("user_id"), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostsByCategory returns the posts tagged with a category
func (h *PostHandler) GetPostsByCategory(c echo.Context) error {
	skip, limit := paging(c)
	posts, err := h.postService.ByCategory(c.Request().Context(), c.Param("category_id"), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostsByHashtag returns the posts carrying a hashtag
func (h *PostHandler) GetPostsByHashtag(c echo.Context) error {
	skip, limit := paging(c)
	posts, err := h.postService.ByHashtag(c.Request().Context(), c.Param("hashtag"), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
