package handlers

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AuthHandler syncs Firebase accounts into profile documents after sign-in
type AuthHandler struct {
	userRepository repositories.UserRepository
	authClient     *auth.Client
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, authClient *auth.Client) *AuthHandler {
	return &AuthHandler{userRepository: userRepo, authClient: authClient}
}

// RegisterAuthRoutes registers authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/sync", h.SyncProfile)
}

// SyncProfile verifies the caller's ID token and upserts the profile
// document keyed by the Firebase UID. Called by the app right after
// sign-in/sign-up.
func (h *AuthHandler) SyncProfile(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
	}
	token, err := h.authClient.VerifyIDToken(c.Request().Context(), tokenParts[1])
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
	}

	var req models.SyncProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	displayName, _ := token.Claims["name"].(string)
	user := &models.User{
		ID:          token.UID,
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: displayName,
		AvatarURL:   req.AvatarURL,
	}
	if err := h.userRepository.Upsert(c.Request().Context(), user); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}
