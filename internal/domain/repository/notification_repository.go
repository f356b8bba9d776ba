package repository

import (
	"context"
	"errors"

	"bizradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification persistence.
// Notifications are append-only; only the read and dismissed flags mutate.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// List retrieves notifications, newest first, capped at limit when
	// limit > 0. When unreadOnly is true, read and dismissed notifications
	// are excluded.
	List(ctx context.Context, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// MarkRead flips the read flag of a notification.
	// Returns ErrNotificationNotFound when no such notification exists.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Dismiss flips the dismissed flag of a notification.
	// Returns ErrNotificationNotFound when no such notification exists.
	Dismiss(ctx context.Context, id uuid.UUID) error
}
