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
)

const recentAdditionWindow = 30 * 24 * time.Hour

type businessService struct {
	businessRepo repository.BusinessRepository
	source       service.PlaceSource
	settings     usecase.SettingsUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	source service.PlaceSource,
	settings usecase.SettingsUsecase,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		source:       source,
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// List retrieves stored businesses, optionally competitors only.
func (s *businessService) List(ctx context.Context, competitorOnly bool) ([]*entity.Business, error) {
	return s.businessRepo.List(ctx, competitorOnly)
}

// Trending fetches the currently trending places around the anchor and
// reconciles them against the store. Places not seen by a scan yet are
// persisted so the trail stays consistent with the monitoring view.
func (s *businessService) Trending(ctx context.Context) ([]*entity.Business, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.NotifyTrending {
		return []*entity.Business{}, nil
	}

	places, err := s.source.GetTrending(ctx, settings.AnchorLat, settings.AnchorLon, settings.RadiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch trending places")
	}

	businesses := make([]*entity.Business, 0, len(places))
	for _, place := range places {
		business, err := s.businessRepo.FindByID(ctx, place.ID)
		switch {
		case err == nil:

		case errors.Is(err, repository.ErrBusinessNotFound):
			business = entity.NewBusinessFromPlace(place, isPotentialCompetitor(place, settings), s.now())
			if err := s.businessRepo.Save(ctx, business); err != nil {
				s.logger.Error("Failed to persist trending business",
					slog.String("id", business.ID),
					slog.Any("error", err),
				)

				continue
			}

		default:
			return nil, errors.Wrap(err, "failed to look up trending business")
		}

		businesses = append(businesses, business)
	}

	return businesses, nil
}

// CompetitorSummary aggregates the competitors inside the monitored radius,
// queried through the flat bounding-box approximation.
func (s *businessService) CompetitorSummary(ctx context.Context) (*usecase.CompetitorSummary, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	radiusKm := float64(settings.RadiusMeters) / 1000.0
	businesses, err := s.businessRepo.ListInBoundingBox(ctx, settings.AnchorLat, settings.AnchorLon, radiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query businesses in monitored area")
	}

	summary := &usecase.CompetitorSummary{
		CategoryBreakdown: make(map[string]int),
	}

	recentCutoff := s.now().Add(-recentAdditionWindow)
	ratingSum := 0.0
	rated := 0
	for _, business := range businesses {
		if !business.IsCompetitor {
			continue
		}

		summary.TotalCompetitors++
		if business.Verified {
			summary.VerifiedBusinesses++
		}
		if business.Rating != nil {
			ratingSum += *business.Rating
			rated++
		}
		if business.FirstSeen.After(recentCutoff) {
			summary.RecentAdditions++
		}
		for _, category := range business.Categories {
			summary.CategoryBreakdown[category]++
		}
	}

	if rated > 0 {
		summary.AverageRating = ratingSum / float64(rated)
	}

	return summary, nil
}
