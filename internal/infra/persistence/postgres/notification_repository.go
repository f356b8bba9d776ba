package postgres

import (
	"context"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// List retrieves notifications, newest first.
func (repo *notificationRepository) List(ctx context.Context, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("read = ? AND dismissed = ?", false, false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flips the read flag of a notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return repo.setFlag(ctx, id, "read")
}

// Dismiss flips the dismissed flag of a notification.
func (repo *notificationRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	return repo.setFlag(ctx, id, "dismissed")
}

func (repo *notificationRepository) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update(column, true)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update notification %s flag", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:           notification.ID,
		Type:         string(notification.Type),
		Title:        notification.Title,
		Message:      notification.Message,
		BusinessID:   notification.BusinessID,
		BusinessName: notification.BusinessName,
		CreatedAt:    notification.CreatedAt,
		Read:         notification.Read,
		Dismissed:    notification.Dismissed,
	}
}

func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:           notificationM.ID,
		Type:         entity.NotificationType(notificationM.Type),
		Title:        notificationM.Title,
		Message:      notificationM.Message,
		BusinessID:   notificationM.BusinessID,
		BusinessName: notificationM.BusinessName,
		CreatedAt:    notificationM.CreatedAt,
		Read:         notificationM.Read,
		Dismissed:    notificationM.Dismissed,
	}
}
