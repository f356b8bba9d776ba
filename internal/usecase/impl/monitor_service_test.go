package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/domain/service"
	mockRepo "bizradar/internal/mocks/repository"
	mockSvc "bizradar/internal/mocks/service"
	mockUC "bizradar/internal/mocks/usecase"
	"bizradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMonitorService(t *testing.T) (
	*monitorService,
	*mockUC.MockScanUsecase,
	*mockUC.MockNotificationUsecase,
	*mockRepo.MockSettingsRepository,
	*mockSvc.MockEventPublisher,
) {
	scanUsecase := mockUC.NewMockScanUsecase(t)
	notificationUsecase := mockUC.NewMockNotificationUsecase(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	monitor := NewMonitorService(scanUsecase, notificationUsecase, settingsRepo, publisher, logger).(*monitorService)
	monitor.restartPause = time.Millisecond
	monitor.stopTimeout = time.Second

	return monitor, scanUsecase, notificationUsecase, settingsRepo, publisher
}

func TestMonitorService_StartAndStop_LifecycleNotifications(t *testing.T) {
	monitor, _, notificationUsecase, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)

	var titles []string
	notificationUsecase.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, input *usecase.CreateNotificationInput) {
		titles = append(titles, input.Title)
		assert.Equal(t, entity.NotificationTypeCompetitorAlert, input.Type)
		assert.True(t, input.Desktop)
	}).Return(&entity.Notification{}, nil)

	require.NoError(t, monitor.Start(ctx))
	assert.True(t, monitor.Status(ctx).Running)

	monitor.Stop(ctx)
	assert.False(t, monitor.Status(ctx).Running)

	assert.Equal(t, []string{"Monitoring Started", "Monitoring Stopped"}, titles)
}

func TestMonitorService_Status_ReportsNextScanWhileRunning(t *testing.T) {
	monitor, _, notificationUsecase, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	notificationUsecase.EXPECT().Create(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	assert.Nil(t, monitor.Status(ctx).NextScanAt, "stopped scheduler has no next scan")

	require.NoError(t, monitor.Start(ctx))

	status := monitor.Status(ctx)
	require.NotNil(t, status.NextScanAt)
	interval := time.Duration(settings.ScanIntervalMinutes) * time.Minute
	assert.WithinDuration(t, time.Now().Add(interval), *status.NextScanAt, 5*time.Second)

	monitor.Stop(ctx)
	assert.Nil(t, monitor.Status(ctx).NextScanAt)
}

func TestMonitorService_Start_RefusesWhenPaused(t *testing.T) {
	monitor, _, _, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.Status = entity.MonitoringStatusPaused

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)

	err := monitor.Start(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "paused")
	assert.False(t, monitor.Status(ctx).Running)
}

func TestMonitorService_Start_RefusesWithoutSettings(t *testing.T) {
	monitor, _, _, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)

	err := monitor.Start(ctx)

	require.Error(t, err)
	assert.False(t, monitor.Status(ctx).Running)
}

func TestMonitorService_Start_Twice(t *testing.T) {
	monitor, _, notificationUsecase, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	notificationUsecase.EXPECT().Create(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	require.NoError(t, monitor.Start(ctx))
	require.NoError(t, monitor.Start(ctx))

	assert.True(t, monitor.Status(ctx).Running)

	monitor.Stop(ctx)
}

func TestMonitorService_Stop_WhenStoppedIsNoOp(t *testing.T) {
	monitor, _, _, _, _ := createTestMonitorService(t)

	monitor.Stop(context.Background())

	assert.False(t, monitor.Status(context.Background()).Running)
}

func TestMonitorService_ForceScanNow_Success(t *testing.T) {
	monitor, scanUsecase, notificationUsecase, settingsRepo, publisher := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	record := &entity.ScanRecord{
		ID:                uuid.New(),
		Timestamp:         time.Now(),
		BusinessesFound:   3,
		NewBusinesses:     2,
		UpdatedBusinesses: 1,
		Success:           true,
	}

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	scanUsecase.EXPECT().Scan(ctx, settings).Return(record)
	publisher.EXPECT().PublishScanEvent(ctx, mock.MatchedBy(func(event *service.ScanEvent) bool {
		return event.NewBusinesses == 2 && event.Success
	})).Return(nil)
	notificationUsecase.EXPECT().Create(ctx, mock.MatchedBy(func(input *usecase.CreateNotificationInput) bool {
		return input.Title == "Scan Summary"
	})).Return(&entity.Notification{}, nil)

	got, err := monitor.ForceScanNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.False(t, monitor.Status(ctx).Running)
}

func TestMonitorService_ForceScanNow_QuietScanRaisesNoSummary(t *testing.T) {
	monitor, scanUsecase, _, settingsRepo, publisher := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	record := &entity.ScanRecord{
		ID:                uuid.New(),
		BusinessesFound:   4,
		NewBusinesses:     0,
		UpdatedBusinesses: 2,
		Success:           true,
	}

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	scanUsecase.EXPECT().Scan(ctx, settings).Return(record)
	publisher.EXPECT().PublishScanEvent(ctx, mock.Anything).Return(nil)

	got, err := monitor.ForceScanNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestMonitorService_ForceScanNow_FailureRaisesScanFailed(t *testing.T) {
	monitor, scanUsecase, notificationUsecase, settingsRepo, publisher := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	record := &entity.ScanRecord{
		ID:           uuid.New(),
		Success:      false,
		ErrorMessage: "connection refused",
	}

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	scanUsecase.EXPECT().Scan(ctx, settings).Return(record)
	publisher.EXPECT().PublishScanEvent(ctx, mock.MatchedBy(func(event *service.ScanEvent) bool {
		return !event.Success && event.ErrorMessage == "connection refused"
	})).Return(nil)
	notificationUsecase.EXPECT().Create(ctx, mock.MatchedBy(func(input *usecase.CreateNotificationInput) bool {
		return input.Title == "Scan Failed"
	})).Return(&entity.Notification{}, nil)

	_, err := monitor.ForceScanNow(ctx)

	require.NoError(t, err)
}

func TestMonitorService_ForceScanNow_RefusesWhenInactive(t *testing.T) {
	monitor, _, _, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.Status = entity.MonitoringStatusInactive

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)

	_, err := monitor.ForceScanNow(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestMonitorService_UpdateSettings_StopsWhenNoLongerActive(t *testing.T) {
	monitor, _, notificationUsecase, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil)
	notificationUsecase.EXPECT().Create(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	require.NoError(t, monitor.Start(ctx))

	paused := activeTestSettings()
	paused.Status = entity.MonitoringStatusPaused
	monitor.UpdateSettings(ctx, paused)

	assert.False(t, monitor.Status(ctx).Running)
}

func TestMonitorService_UpdateSettings_RestartsOnIntervalChange(t *testing.T) {
	monitor, _, notificationUsecase, settingsRepo, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(settings, nil).Once()
	notificationUsecase.EXPECT().Create(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	require.NoError(t, monitor.Start(ctx))

	faster := activeTestSettings()
	faster.ScanIntervalMinutes = 15
	settingsRepo.EXPECT().Get(ctx).Return(faster, nil)

	monitor.UpdateSettings(ctx, faster)

	status := monitor.Status(ctx)
	assert.True(t, status.Running)
	assert.Equal(t, 15, status.ScanIntervalMinutes)

	monitor.Stop(ctx)
}

func TestMonitorService_UpdateSettings_WhileStoppedJustCaches(t *testing.T) {
	monitor, _, _, _, _ := createTestMonitorService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	monitor.UpdateSettings(ctx, settings)

	status := monitor.Status(ctx)
	assert.False(t, status.Running)
	assert.True(t, status.SettingsLoaded)
	assert.Equal(t, settings.ScanIntervalMinutes, status.ScanIntervalMinutes)
}
