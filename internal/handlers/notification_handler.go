package handlers

import (
	"net/http"

	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
}

// GetNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	skip, limit := paging(c)
	notifications, err := h.notificationService.List(c.Request().Context(), currentUserID(c), skip, limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationService.CountUnread(c.Request().Context(), currentUserID(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	if err := h.notificationService.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.notificationService.MarkAllRead(c.Request().Context(), currentUserID(c)); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteNotification removes a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	if err := h.notificationService.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
