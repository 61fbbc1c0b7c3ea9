package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// NotificationHandler handles notification-related requests
type NotificationHandler struct {
	notificationService ports.NotificationService
	logger              *logger.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService ports.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetNotifications generates any due reminders for the user and then
// returns the unread ones
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	ownerID := getUserIDFromContext(c)
	ctx := c.Request().Context()

	if err := h.notificationService.GenerateForUser(ctx, ownerID); err != nil {
		h.logger.Error("Notification generation failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while processing notifications.")
	}

	notifications, err := h.notificationService.ListUnread(ctx, ownerID)
	if err != nil {
		h.logger.Error("List notifications failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while processing notifications.")
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkAsRead flips a notification's read flag for the authenticated user
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), notificationID, ownerID); err != nil {
		if errors.Is(err, entities.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found or does not belong to the user.")
		}
		h.logger.Error("Mark notification read failed", "error", err, "notification_id", notificationID, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred.")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Notification marked as read."})
}
