// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bizradar/config"
	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/domain/service"
	"bizradar/internal/errors"
	"bizradar/internal/usecase"
)

type scanService struct {
	source           service.PlaceSource
	businessRepo     repository.BusinessRepository
	notificationRepo repository.NotificationRepository
	scanRepo         repository.ScanRepository
	policy           *notifyPolicy
	logger           *slog.Logger
	maxResults       int
	now              func() time.Time
}

// NewScanService creates the scan-and-diff engine.
func NewScanService(
	cfg *config.Config,
	source service.PlaceSource,
	businessRepo repository.BusinessRepository,
	notificationRepo repository.NotificationRepository,
	scanRepo repository.ScanRepository,
	logger *slog.Logger,
) usecase.ScanUsecase {
	return &scanService{
		source:           source,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
		scanRepo:         scanRepo,
		policy:           &notifyPolicy{},
		logger:           logger,
		maxResults:       cfg.Monitoring.MaxResultsPerScan,
		now:              time.Now,
	}
}

// Scan performs one reconciliation pass. The returned record is persisted
// before Scan returns, on success and on failure alike.
func (s *scanService) Scan(ctx context.Context, settings *entity.MonitoringSettings) *entity.ScanRecord {
	start := s.now()
	record := &entity.ScanRecord{
		Timestamp: start,
		Success:   true,
	}

	s.logger.Info("Starting monitoring scan",
		slog.String("anchor", settings.AnchorName),
		slog.Int("radius_meters", settings.RadiusMeters),
	)

	places, err := s.source.SearchNearby(
		ctx,
		settings.AnchorLat,
		settings.AnchorLon,
		settings.RadiusMeters,
		settings.Categories,
		s.maxResults,
	)
	if err != nil {
		record.Success = false
		record.ErrorMessage = err.Error()
		s.logger.Error("Scan failed", slog.Any("error", err))
	} else {
		record.BusinessesFound = len(places)

		newBusinesses, updatedBusinesses := s.reconcile(ctx, places, settings)
		record.NewBusinesses = len(newBusinesses)
		record.UpdatedBusinesses = len(updatedBusinesses)

		for _, notification := range s.policy.Evaluate(newBusinesses, updatedBusinesses, settings) {
			if err := s.notificationRepo.Create(ctx, notification); err != nil {
				s.logger.Error("Failed to persist scan notification",
					slog.String("type", string(notification.Type)),
					slog.Any("error", err),
				)
			}
		}

		s.logger.Info("Scan completed",
			slog.Int("found", record.BusinessesFound),
			slog.Int("new", record.NewBusinesses),
			slog.Int("updated", record.UpdatedBusinesses),
		)
	}

	record.Duration = s.now().Sub(start)

	if err := s.scanRepo.Append(ctx, record); err != nil {
		s.logger.Error("Failed to persist scan record", slog.Any("error", err))
	}

	return record
}

// History retrieves past scan records, newest first.
func (s *scanService) History(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	return s.scanRepo.List(ctx, limit)
}

// reconcile merges fetched places into the store and returns the newly
// created and updated businesses. A failed save drops that business from
// the counts; the scan carries on.
func (s *scanService) reconcile(ctx context.Context, places []*entity.PlaceRecord, settings *entity.MonitoringSettings) (newBusinesses, updatedBusinesses []*entity.Business) {
	for _, place := range places {
		if shouldExclude(place, settings) {
			continue
		}

		existing, err := s.businessRepo.FindByID(ctx, place.ID)
		switch {
		case err == nil:
			if !existing.ApplyPlace(place, s.now()) {
				continue
			}
			if err := s.businessRepo.Save(ctx, existing); err != nil {
				s.logger.Error("Failed to save updated business",
					slog.String("id", existing.ID),
					slog.Any("error", err),
				)

				continue
			}
			updatedBusinesses = append(updatedBusinesses, existing)

		case errors.Is(err, repository.ErrBusinessNotFound):
			business := entity.NewBusinessFromPlace(place, isPotentialCompetitor(place, settings), s.now())
			if err := s.businessRepo.Save(ctx, business); err != nil {
				s.logger.Error("Failed to save new business",
					slog.String("id", business.ID),
					slog.Any("error", err),
				)

				continue
			}
			newBusinesses = append(newBusinesses, business)

		default:
			s.logger.Error("Failed to look up business",
				slog.String("id", place.ID),
				slog.Any("error", err),
			)
		}
	}

	return newBusinesses, updatedBusinesses
}

// shouldExclude drops a place when any of its categories contains an
// excluded-category substring (case-insensitive), or when its rating sits
// below the configured threshold. The rating check only applies when both
// the rating and the threshold are present.
func shouldExclude(place *entity.PlaceRecord, settings *entity.MonitoringSettings) bool {
	if categoriesMatch(place.Categories, settings.ExcludeCategories) {
		return true
	}

	if settings.MinRating != nil && place.Rating != nil && *place.Rating < *settings.MinRating {
		return true
	}

	return false
}

// isPotentialCompetitor classifies a place as a competitor when its
// categories intersect the monitored list. An empty monitored list means
// everything nearby counts as competition.
func isPotentialCompetitor(place *entity.PlaceRecord, settings *entity.MonitoringSettings) bool {
	if len(settings.Categories) == 0 {
		return true
	}

	return categoriesMatch(place.Categories, settings.Categories)
}

// categoriesMatch reports whether any category contains any of the needles
// as a case-insensitive substring.
func categoriesMatch(categories, needles []string) bool {
	for _, category := range categories {
		lowered := strings.ToLower(category)
		for _, needle := range needles {
			if needle == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(needle)) {
				return true
			}
		}
	}

	return false
}
