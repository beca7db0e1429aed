package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"firebase.google.com/go/v4/auth"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the Firebase UID stored by the auth middleware,
// or "" when the request is unauthenticated.
func currentUserID(c echo.Context) string {
	uid, _ := c.Get("firebaseUID").(string)
	return uid
}

// currentDisplayName returns the display name claim of the verified ID
// token, used as a fallback when the caller has no profile document.
func currentDisplayName(c echo.Context) string {
	token, ok := c.Get("firebaseToken").(*auth.Token)
	if !ok {
		return ""
	}
	name, _ := token.Claims["name"].(string)
	return name
}

// serviceError maps service-layer errors onto HTTP responses
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// paging reads page/limit query params and returns skip/limit values
func paging(c echo.Context) (skip, limit int64) {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return (page - 1) * limit, limit
}
