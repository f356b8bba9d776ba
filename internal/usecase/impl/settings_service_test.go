package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bizradar/config"
	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	mockRepo "bizradar/internal/mocks/repository"
	mockUC "bizradar/internal/mocks/usecase"
	"bizradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingsService(t *testing.T) (
	usecase.SettingsUsecase,
	*mockRepo.MockSettingsRepository,
	*mockUC.MockMonitorUsecase,
) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	monitorUsecase := mockUC.NewMockMonitorUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Monitoring: &config.MonitoringConfig{
			DefaultRadiusMeters:    1000,
			DefaultIntervalMinutes: 60,
			MaxResultsPerScan:      50,
		},
	}

	service := NewSettingsService(cfg, settingsRepo, monitorUsecase, logger)

	return service, settingsRepo, monitorUsecase
}

func stringPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestSettingsService_Get_CreatesDefaultsWhenAbsent(t *testing.T) {
	service, settingsRepo, _ := createTestSettingsService(t)

	ctx := context.Background()

	settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)
	settingsRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)

	settings, err := service.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.SettingsKey, settings.ID)
	assert.Equal(t, 1000, settings.RadiusMeters)
	assert.Equal(t, 60, settings.ScanIntervalMinutes)
	assert.Equal(t, entity.MonitoringStatusActive, settings.Status)
	assert.True(t, settings.NotifyNewBusinesses)
}

func TestSettingsService_Get_ReturnsStored(t *testing.T) {
	service, settingsRepo, _ := createTestSettingsService(t)

	ctx := context.Background()
	stored := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(stored, nil)

	settings, err := service.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, settings)
}

func TestSettingsService_Update_AppliesPartialUpdate(t *testing.T) {
	service, settingsRepo, monitorUsecase := createTestSettingsService(t)

	ctx := context.Background()
	stored := activeTestSettings()

	settingsRepo.EXPECT().Get(ctx).Return(stored, nil)
	settingsRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	monitorUsecase.EXPECT().UpdateSettings(ctx, mock.Anything).Return()

	updated, err := service.Update(ctx, &usecase.UpdateSettingsInput{
		AnchorName:          stringPtr("My New Cafe"),
		ScanIntervalMinutes: intPtr(30),
		Status:              stringPtr("paused"),
	})

	require.NoError(t, err)
	assert.Equal(t, "My New Cafe", updated.AnchorName)
	assert.Equal(t, 30, updated.ScanIntervalMinutes)
	assert.Equal(t, entity.MonitoringStatusPaused, updated.Status)
	// untouched fields survive
	assert.Equal(t, 1000, updated.RadiusMeters)
	assert.Equal(t, []string{"Coffee Shop"}, updated.Categories)
}

func TestSettingsService_Update_RejectsInvalidLatitude(t *testing.T) {
	service, _, _ := createTestSettingsService(t)

	_, err := service.Update(context.Background(), &usecase.UpdateSettingsInput{
		AnchorLat: floatPtr(123.0),
	})

	require.Error(t, err)
}

func TestSettingsService_Update_RejectsUnknownStatus(t *testing.T) {
	service, _, _ := createTestSettingsService(t)

	_, err := service.Update(context.Background(), &usecase.UpdateSettingsInput{
		Status: stringPtr("hibernating"),
	})

	require.Error(t, err)
}

func TestSettingsService_Update_RejectsNonPositiveRadius(t *testing.T) {
	service, _, _ := createTestSettingsService(t)

	_, err := service.Update(context.Background(), &usecase.UpdateSettingsInput{
		RadiusMeters: intPtr(0),
	})

	require.Error(t, err)
}
