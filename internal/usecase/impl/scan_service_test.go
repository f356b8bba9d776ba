package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizradar/config"
	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	mockRepo "bizradar/internal/mocks/repository"
	mockSvc "bizradar/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestScanService(t *testing.T) (
	*scanService,
	*mockSvc.MockPlaceSource,
	*mockRepo.MockBusinessRepository,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockScanRepository,
) {
	source := mockSvc.NewMockPlaceSource(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	scanRepo := mockRepo.NewMockScanRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Monitoring: &config.MonitoringConfig{
			DefaultRadiusMeters:    1000,
			DefaultIntervalMinutes: 60,
			MaxResultsPerScan:      50,
		},
	}

	service := NewScanService(cfg, source, businessRepo, notificationRepo, scanRepo, logger).(*scanService)

	return service, source, businessRepo, notificationRepo, scanRepo
}

func activeTestSettings() *entity.MonitoringSettings {
	return &entity.MonitoringSettings{
		ID:                  entity.SettingsKey,
		AnchorName:          "My Cafe",
		AnchorLat:           25.04,
		AnchorLon:           121.56,
		RadiusMeters:        1000,
		ScanIntervalMinutes: 60,
		Categories:          []string{"Coffee Shop"},
		NotifyNewBusinesses: true,
		NotifyRatingChanges: true,
		NotifyTrending:      true,
		Status:              entity.MonitoringStatusActive,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestScanService_Scan_NewBusiness(t *testing.T) {
	service, source, businessRepo, notificationRepo, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	place := &entity.PlaceRecord{
		ID:         "fsq-1",
		Name:       "Bean There",
		Categories: []string{"Coffee Shop"},
		Rating:     floatPtr(4.2),
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-1").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Save(ctx, mock.Anything).Run(func(ctx context.Context, business *entity.Business) {
		assert.Equal(t, "fsq-1", business.ID)
		assert.True(t, business.IsCompetitor)
		assert.Equal(t, business.FirstSeen, business.LastUpdated)
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, notification *entity.Notification) {
		assert.Equal(t, entity.NotificationTypeNewBusiness, notification.Type)
		assert.Equal(t, "Bean There", notification.BusinessName)
	}).Return(nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 1, record.BusinessesFound)
	assert.Equal(t, 1, record.NewBusinesses)
	assert.Equal(t, 0, record.UpdatedBusinesses)
}

func TestScanService_Scan_SecondScanIsNoOp(t *testing.T) {
	service, source, businessRepo, _, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	place := &entity.PlaceRecord{
		ID:         "fsq-1",
		Name:       "Bean There",
		Categories: []string{"Coffee Shop"},
		Rating:     floatPtr(4.2),
	}
	stored := entity.NewBusinessFromPlace(place, true, time.Now().Add(-time.Hour))

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-1").Return(stored, nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 1, record.BusinessesFound)
	assert.Equal(t, 0, record.NewBusinesses)
	assert.Equal(t, 0, record.UpdatedBusinesses)
}

func TestScanService_Scan_RatingChangeAdvancesLastUpdatedOnly(t *testing.T) {
	service, source, businessRepo, notificationRepo, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	firstSeen := time.Now().Add(-48 * time.Hour)
	stored := &entity.Business{
		ID:           "fsq-1",
		Name:         "Bean There",
		Categories:   []string{"Coffee Shop"},
		Rating:       floatPtr(4.0),
		IsCompetitor: true,
		FirstSeen:    firstSeen,
		LastUpdated:  firstSeen,
	}
	place := &entity.PlaceRecord{
		ID:         "fsq-1",
		Name:       "Bean There",
		Categories: []string{"Coffee Shop"},
		Rating:     floatPtr(4.5),
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-1").Return(stored, nil)
	businessRepo.EXPECT().Save(ctx, mock.Anything).Run(func(ctx context.Context, business *entity.Business) {
		require.NotNil(t, business.Rating)
		assert.InDelta(t, 4.5, *business.Rating, 0.001)
		assert.Equal(t, firstSeen, business.FirstSeen)
		assert.True(t, business.LastUpdated.After(firstSeen))
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Run(func(ctx context.Context, notification *entity.Notification) {
		assert.Equal(t, entity.NotificationTypeBusinessUpdated, notification.Type)
	}).Return(nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 0, record.NewBusinesses)
	assert.Equal(t, 1, record.UpdatedBusinesses)
}

func TestScanService_Scan_ExcludesCategorySubstring(t *testing.T) {
	service, source, _, _, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.ExcludeCategories = []string{"Gas"}

	place := &entity.PlaceRecord{
		ID:         "fsq-2",
		Name:       "Quick Fuel",
		Categories: []string{"Gas Station"},
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 1, record.BusinessesFound)
	assert.Equal(t, 0, record.NewBusinesses)
}

func TestScanService_Scan_ExcludesBelowMinRating(t *testing.T) {
	service, source, _, _, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.MinRating = floatPtr(4.0)

	place := &entity.PlaceRecord{
		ID:         "fsq-3",
		Name:       "Meh Cafe",
		Categories: []string{"Coffee Shop"},
		Rating:     floatPtr(3.1),
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 0, record.NewBusinesses)
}

func TestScanService_Scan_UnratedPlaceSurvivesMinRating(t *testing.T) {
	service, source, businessRepo, notificationRepo, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.MinRating = floatPtr(4.0)

	place := &entity.PlaceRecord{
		ID:         "fsq-4",
		Name:       "New Spot",
		Categories: []string{"Coffee Shop"},
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-4").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 1, record.NewBusinesses)
}

func TestScanService_Scan_EmptyCategoriesMeansEverythingCompetes(t *testing.T) {
	service, source, businessRepo, notificationRepo, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.Categories = nil

	place := &entity.PlaceRecord{
		ID:         "fsq-5",
		Name:       "Laundry Plus",
		Categories: []string{"Laundromat"},
	}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, mock.Anything, 50).
		Return([]*entity.PlaceRecord{place}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-5").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Save(ctx, mock.Anything).Run(func(ctx context.Context, business *entity.Business) {
		assert.True(t, business.IsCompetitor)
	}).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 1, record.NewBusinesses)
}

func TestScanService_Scan_FetchErrorRecordsFailure(t *testing.T) {
	service, source, _, _, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return(nil, errors.New("connection refused"))
	scanRepo.EXPECT().Append(ctx, mock.Anything).Run(func(ctx context.Context, record *entity.ScanRecord) {
		assert.False(t, record.Success)
		assert.Contains(t, record.ErrorMessage, "connection refused")
	}).Return(nil)

	record := service.Scan(ctx, settings)

	require.False(t, record.Success)
	assert.Equal(t, 0, record.BusinessesFound)
	assert.Equal(t, 0, record.NewBusinesses)
	assert.Equal(t, 0, record.UpdatedBusinesses)
}

func TestScanService_Scan_FailedSaveSkipsBusiness(t *testing.T) {
	service, source, businessRepo, notificationRepo, scanRepo := createTestScanService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	broken := &entity.PlaceRecord{ID: "fsq-bad", Name: "Broken", Categories: []string{"Coffee Shop"}}
	fine := &entity.PlaceRecord{ID: "fsq-ok", Name: "Fine", Categories: []string{"Coffee Shop"}}

	source.EXPECT().
		SearchNearby(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters, settings.Categories, 50).
		Return([]*entity.PlaceRecord{broken, fine}, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-bad").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().FindByID(ctx, "fsq-ok").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Save(ctx, mock.MatchedBy(func(business *entity.Business) bool {
		return business.ID == "fsq-bad"
	})).Return(errors.New("constraint violation"))
	businessRepo.EXPECT().Save(ctx, mock.MatchedBy(func(business *entity.Business) bool {
		return business.ID == "fsq-ok"
	})).Return(nil)
	notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
		return notification.BusinessName == "Fine"
	})).Return(nil)
	scanRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

	record := service.Scan(ctx, settings)

	require.True(t, record.Success)
	assert.Equal(t, 2, record.BusinessesFound)
	assert.Equal(t, 1, record.NewBusinesses)
}
