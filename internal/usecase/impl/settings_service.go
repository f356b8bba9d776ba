package impl

import (
	"context"
	"log/slog"
	"time"

	"bizradar/config"
	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/errors"
	"bizradar/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type settingsService struct {
	settingsRepo   repository.SettingsRepository
	monitorUsecase usecase.MonitorUsecase
	validate       *validator.Validate
	logger         *slog.Logger
	defaults       *config.MonitoringConfig
	now            func() time.Time
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	cfg *config.Config,
	settingsRepo repository.SettingsRepository,
	monitorUsecase usecase.MonitorUsecase,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo:   settingsRepo,
		monitorUsecase: monitorUsecase,
		validate:       validator.New(),
		logger:         logger,
		defaults:       cfg.Monitoring,
		now:            time.Now,
	}
}

// Get retrieves the monitoring settings, creating and persisting the
// configured defaults when none are stored yet.
func (s *settingsService) Get(ctx context.Context) (*entity.MonitoringSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, errors.Wrap(err, "failed to load monitoring settings")
	}

	settings = entity.DefaultMonitoringSettings(
		s.defaults.DefaultRadiusMeters,
		s.defaults.DefaultIntervalMinutes,
		s.now(),
	)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to persist default monitoring settings")
	}

	s.logger.Info("Created default monitoring settings",
		slog.Int("radius_meters", settings.RadiusMeters),
		slog.Int("interval_minutes", settings.ScanIntervalMinutes),
	)

	return settings, nil
}

// Update validates and applies a partial update, persists the result and
// forwards it to the scheduler so a running loop can react.
func (s *settingsService) Update(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.MonitoringSettings, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "invalid settings update")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	applyUpdate(settings, input)
	settings.UpdatedAt = s.now()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save monitoring settings")
	}

	s.monitorUsecase.UpdateSettings(ctx, settings)

	return settings, nil
}

func applyUpdate(settings *entity.MonitoringSettings, input *usecase.UpdateSettingsInput) {
	if input.AnchorName != nil {
		settings.AnchorName = *input.AnchorName
	}
	if input.AnchorLat != nil {
		settings.AnchorLat = *input.AnchorLat
	}
	if input.AnchorLon != nil {
		settings.AnchorLon = *input.AnchorLon
	}
	if input.RadiusMeters != nil {
		settings.RadiusMeters = *input.RadiusMeters
	}
	if input.ScanIntervalMinutes != nil {
		settings.ScanIntervalMinutes = *input.ScanIntervalMinutes
	}
	if input.Categories != nil {
		settings.Categories = *input.Categories
	}
	if input.ExcludeCategories != nil {
		settings.ExcludeCategories = *input.ExcludeCategories
	}
	if input.MinRating != nil {
		settings.MinRating = input.MinRating
	}
	if input.NotifyNewBusinesses != nil {
		settings.NotifyNewBusinesses = *input.NotifyNewBusinesses
	}
	if input.NotifyRatingChanges != nil {
		settings.NotifyRatingChanges = *input.NotifyRatingChanges
	}
	if input.NotifyTrending != nil {
		settings.NotifyTrending = *input.NotifyTrending
	}
	if input.Status != nil {
		settings.Status = entity.MonitoringStatus(*input.Status)
	}
}
