package impl

import (
	"context"
	"log/slog"
	"time"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/domain/service"
	"bizradar/internal/errors"
	"bizradar/internal/usecase"

	"github.com/google/uuid"
)

const recentNotificationWindow = 24 * time.Hour

type notificationService struct {
	notificationRepo repository.NotificationRepository
	alertSink        service.AlertSink
	logger           *slog.Logger
	now              func() time.Time
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	alertSink service.AlertSink,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		alertSink:        alertSink,
		logger:           logger,
		now:              time.Now,
	}
}

// Create persists a notification and, when requested, raises a desktop
// alert. The alert is best-effort; a sink failure never fails the create.
func (s *notificationService) Create(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if !input.Type.Valid() {
		return nil, errors.Errorf("unknown notification type: %s", input.Type)
	}

	notification := &entity.Notification{
		Type:         input.Type,
		Title:        input.Title,
		Message:      input.Message,
		BusinessID:   input.BusinessID,
		BusinessName: input.BusinessName,
		CreatedAt:    s.now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if input.Desktop {
		if err := s.alertSink.Notify(input.Title, input.Message); err != nil {
			s.logger.Warn("Failed to deliver desktop alert",
				slog.String("title", input.Title),
				slog.Any("error", err),
			)
		}
	}

	return notification, nil
}

// List retrieves notifications, newest first.
func (s *notificationService) List(ctx context.Context, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	return s.notificationRepo.List(ctx, unreadOnly, limit)
}

// MarkRead flips the read flag of one notification.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification as read and returns how many
// were flipped.
func (s *notificationService) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := s.notificationRepo.List(ctx, true, 0)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list unread notifications")
	}

	marked := 0
	for _, notification := range unread {
		if err := s.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
			return marked, errors.Wrapf(err, "failed to mark notification %s read", notification.ID)
		}
		marked++
	}

	return marked, nil
}

// Dismiss flips the dismissed flag of one notification.
func (s *notificationService) Dismiss(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.Dismiss(ctx, id)
}

// Summary aggregates the notification trail for the operator dashboard.
func (s *notificationService) Summary(ctx context.Context) (*usecase.NotificationSummary, error) {
	notifications, err := s.notificationRepo.List(ctx, false, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	summary := &usecase.NotificationSummary{
		Total:  len(notifications),
		ByType: make(map[entity.NotificationType]int),
	}

	recentCutoff := s.now().Add(-recentNotificationWindow)
	for _, notification := range notifications {
		summary.ByType[notification.Type]++
		if !notification.Read && !notification.Dismissed {
			summary.Unread++
		}
		if notification.CreatedAt.After(recentCutoff) {
			summary.RecentCount++
		}
	}

	return summary, nil
}
