package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/domain/repository"
	"bizradar/internal/errors"
	"bizradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler exposes the notification trail.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns notifications, newest first. Supports ?unread=true and
// ?limit=n.
func (h *NotificationHandler) List(c echo.Context) error {
	unreadOnly := c.QueryParam("unread") == "true"
	limit := parseLimit(c.QueryParam("limit"))

	notifications, err := h.uc.List(c.Request().Context(), unreadOnly, limit)
	if err != nil {
		h.logger.Error("Failed to list notifications", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_LIST_FAILED", "Failed to list notifications")
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Notification id must be a UUID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}
		h.logger.Error("Failed to mark notification read", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_UPDATE_FAILED", "Failed to update notification")
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead marks every unread notification as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	marked, err := h.uc.MarkAllRead(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to mark notifications read", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_UPDATE_FAILED", "Failed to update notifications")
	}

	return response.Success(c, http.StatusOK, map[string]int{"marked": marked}, "Notifications marked read")
}

// Dismiss dismisses one notification.
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Notification id must be a UUID")
	}

	if err := h.uc.Dismiss(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}
		h.logger.Error("Failed to dismiss notification", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_UPDATE_FAILED", "Failed to update notification")
	}

	return response.Success(c, http.StatusOK, nil, "Notification dismissed")
}

// Summary returns aggregate notification statistics.
func (h *NotificationHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to summarize notifications", slog.Any("error", err))

		return response.InternalServerError(c, "NOTIFICATION_SUMMARY_FAILED", "Failed to summarize notifications")
	}

	return response.Success(c, http.StatusOK, summary, "")
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
