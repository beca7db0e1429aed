package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/me", h.GetMe)
	g.PUT("/me", h.UpdateMe)
	g.GET("/users/:user_id", h.GetUser)
}

// RegisterAdminRoutes registers the admin console's user listing
func (h *UserHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
}

// GetMe returns the caller's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userRepository.GetByID(c.Request().Context(), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe updates the caller's profile fields
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := bson.M{}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.AvatarURL != "" {
		fields["avatar_url"] = req.AvatarURL
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}
	uid := currentUserID(c)
	if err := h.userRepository.UpdateProfile(c.Request().Context(), uid, fields); err != nil {
		return serviceError(err)
	}

	user, err := h.userRepository.GetByID(c.Request().Context(), uid)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser returns a user profile by id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetByID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers returns paginated user profiles for the admin console
func (h *UserHandler) ListUsers(c echo.Context) error {
	skip, limit := paging(c)
	users, err := h.userRepository.List(c.Request().Context(), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, users)
}
