package usecase

import (
	"context"

	"bizradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput carries the content of a new notification.
type CreateNotificationInput struct {
	Type         entity.NotificationType
	Title        string
	Message      string
	BusinessID   string
	BusinessName string

	// Desktop requests a best-effort desktop alert alongside persistence.
	Desktop bool
}

// NotificationSummary aggregates notification statistics for the operator.
type NotificationSummary struct {
	Total       int                             `json:"total"`
	Unread      int                             `json:"unread"`
	RecentCount int                             `json:"recent_count"` // Created within the last 24 hours.
	ByType      map[entity.NotificationType]int `json:"by_type"`
}

// NotificationUsecase defines the interface for notification management.
type NotificationUsecase interface {
	// Create persists a notification and optionally raises a desktop alert.
	Create(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)

	// List retrieves notifications, newest first.
	List(ctx context.Context, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// MarkRead flips the read flag of one notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every unread notification as read and returns how
	// many were flipped.
	MarkAllRead(ctx context.Context) (int, error)

	// Dismiss flips the dismissed flag of one notification.
	Dismiss(ctx context.Context, id uuid.UUID) error

	// Summary aggregates counts by type, unread and recent activity.
	Summary(ctx context.Context) (*NotificationSummary, error)
}
