package middleware

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AdminOnly gates a route group on the caller's is_admin profile flag.
// Must run after FirebaseAuthMiddleware.
func AdminOnly(users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("firebaseUID").(string)
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			user, err := users.GetByID(c.Request().Context(), uid)
			if err != nil || !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
