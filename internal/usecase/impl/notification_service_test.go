package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizradar/internal/domain/entity"
	mockRepo "bizradar/internal/mocks/repository"
	mockSvc "bizradar/internal/mocks/service"
	"bizradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockAlertSink,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertSink := mockSvc.NewMockAlertSink(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(notificationRepo, alertSink, logger)

	return service, notificationRepo, alertSink
}

func TestNotificationService_Create_WithDesktopAlert(t *testing.T) {
	service, notificationRepo, alertSink := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	alertSink.EXPECT().Notify("New Business Detected", "Bean There opened nearby").Return(nil)

	notification, err := service.Create(ctx, &usecase.CreateNotificationInput{
		Type:    entity.NotificationTypeNewBusiness,
		Title:   "New Business Detected",
		Message: "Bean There opened nearby",
		Desktop: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeNewBusiness, notification.Type)
}

func TestNotificationService_Create_SinkFailureIsSwallowed(t *testing.T) {
	service, notificationRepo, alertSink := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	alertSink.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no display"))

	_, err := service.Create(ctx, &usecase.CreateNotificationInput{
		Type:    entity.NotificationTypeCompetitorAlert,
		Title:   "Monitoring Started",
		Message: "Background monitoring started",
		Desktop: true,
	})

	require.NoError(t, err)
}

func TestNotificationService_Create_NoDesktopSkipsSink(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := service.Create(ctx, &usecase.CreateNotificationInput{
		Type:    entity.NotificationTypeBusinessUpdated,
		Title:   "Business Updated",
		Message: "rating changed",
	})

	require.NoError(t, err)
}

func TestNotificationService_Create_RejectsUnknownType(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, err := service.Create(context.Background(), &usecase.CreateNotificationInput{
		Type:  entity.NotificationType("carrier_pigeon"),
		Title: "?",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier_pigeon")
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	notificationRepo.EXPECT().List(ctx, true, 0).Return([]*entity.Notification{
		{ID: first}, {ID: second},
	}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, first).Return(nil)
	notificationRepo.EXPECT().MarkRead(ctx, second).Return(nil)

	marked, err := service.MarkAllRead(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, marked)
}

func TestNotificationService_Summary(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	now := time.Now()

	notificationRepo.EXPECT().List(ctx, false, 0).Return([]*entity.Notification{
		{Type: entity.NotificationTypeNewBusiness, CreatedAt: now.Add(-time.Hour)},
		{Type: entity.NotificationTypeNewBusiness, CreatedAt: now.Add(-48 * time.Hour), Read: true},
		{Type: entity.NotificationTypeCompetitorAlert, CreatedAt: now.Add(-2 * time.Hour), Dismissed: true},
	}, nil)

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Unread)
	assert.Equal(t, 2, summary.RecentCount)
	assert.Equal(t, 2, summary.ByType[entity.NotificationTypeNewBusiness])
	assert.Equal(t, 1, summary.ByType[entity.NotificationTypeCompetitorAlert])
}
