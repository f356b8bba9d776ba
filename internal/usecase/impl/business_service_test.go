package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	mockRepo "bizradar/internal/mocks/repository"
	mockSvc "bizradar/internal/mocks/service"
	mockUC "bizradar/internal/mocks/usecase"
	"bizradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (
	usecase.BusinessUsecase,
	*mockRepo.MockBusinessRepository,
	*mockSvc.MockPlaceSource,
	*mockUC.MockSettingsUsecase,
) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	source := mockSvc.NewMockPlaceSource(t)
	settingsUsecase := mockUC.NewMockSettingsUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewBusinessService(businessRepo, source, settingsUsecase, logger)

	return service, businessRepo, source, settingsUsecase
}

func TestBusinessService_List(t *testing.T) {
	service, businessRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	stored := []*entity.Business{{ID: "a"}, {ID: "b"}}

	businessRepo.EXPECT().List(ctx, true).Return(stored, nil)

	businesses, err := service.List(ctx, true)

	require.NoError(t, err)
	assert.Equal(t, stored, businesses)
}

func TestBusinessService_Trending_PersistsUnseenPlaces(t *testing.T) {
	service, businessRepo, source, settingsUsecase := createTestBusinessService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	known := &entity.PlaceRecord{ID: "fsq-known", Name: "Known", Categories: []string{"Coffee Shop"}, Popularity: floatPtr(0.9)}
	unseen := &entity.PlaceRecord{ID: "fsq-new", Name: "Fresh", Categories: []string{"Coffee Shop"}, Popularity: floatPtr(0.8)}

	settingsUsecase.EXPECT().Get(ctx).Return(settings, nil)
	source.EXPECT().
		GetTrending(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters).
		Return([]*entity.PlaceRecord{known, unseen}, nil)

	storedKnown := entity.NewBusinessFromPlace(known, true, time.Now().Add(-time.Hour))
	businessRepo.EXPECT().FindByID(ctx, "fsq-known").Return(storedKnown, nil)
	businessRepo.EXPECT().FindByID(ctx, "fsq-new").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().Save(ctx, mock.MatchedBy(func(business *entity.Business) bool {
		return business.ID == "fsq-new" && business.IsCompetitor
	})).Return(nil)

	businesses, err := service.Trending(ctx)

	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "fsq-known", businesses[0].ID)
	assert.Equal(t, "fsq-new", businesses[1].ID)
}

func TestBusinessService_Trending_DisabledByToggle(t *testing.T) {
	service, _, _, settingsUsecase := createTestBusinessService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	settings.NotifyTrending = false

	settingsUsecase.EXPECT().Get(ctx).Return(settings, nil)

	businesses, err := service.Trending(ctx)

	require.NoError(t, err)
	assert.Empty(t, businesses)
}

func TestBusinessService_CompetitorSummary(t *testing.T) {
	service, businessRepo, _, settingsUsecase := createTestBusinessService(t)

	ctx := context.Background()
	settings := activeTestSettings()
	now := time.Now()

	settingsUsecase.EXPECT().Get(ctx).Return(settings, nil)
	businessRepo.EXPECT().
		ListInBoundingBox(ctx, settings.AnchorLat, settings.AnchorLon, 1.0).
		Return([]*entity.Business{
			{ID: "a", IsCompetitor: true, Rating: floatPtr(4.0), Verified: true, Categories: []string{"Coffee Shop"}, FirstSeen: now.Add(-24 * time.Hour)},
			{ID: "b", IsCompetitor: true, Rating: floatPtr(5.0), Categories: []string{"Coffee Shop", "Bakery"}, FirstSeen: now.Add(-90 * 24 * time.Hour)},
			{ID: "c", IsCompetitor: true, FirstSeen: now.Add(-10 * 24 * time.Hour)},
			{ID: "d", IsCompetitor: false, Rating: floatPtr(1.0)},
		}, nil)

	summary, err := service.CompetitorSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalCompetitors)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
	assert.Equal(t, 1, summary.VerifiedBusinesses)
	assert.Equal(t, 2, summary.RecentAdditions)
	assert.Equal(t, 2, summary.CategoryBreakdown["Coffee Shop"])
	assert.Equal(t, 1, summary.CategoryBreakdown["Bakery"])
}

func TestBusinessService_CompetitorSummary_EmptyArea(t *testing.T) {
	service, businessRepo, _, settingsUsecase := createTestBusinessService(t)

	ctx := context.Background()
	settings := activeTestSettings()

	settingsUsecase.EXPECT().Get(ctx).Return(settings, nil)
	businessRepo.EXPECT().
		ListInBoundingBox(ctx, settings.AnchorLat, settings.AnchorLon, 1.0).
		Return(nil, nil)

	summary, err := service.CompetitorSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCompetitors)
	assert.Zero(t, summary.AverageRating)
}
