package postgres

import (
	"context"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
// The monitoring configuration is a singleton row under entity.SettingsKey.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the monitoring settings.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.MonitoringSettings, error) {
	var settingsM model.MonitoringSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.SettingsKey).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get monitoring settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Save upserts the monitoring settings under the fixed key.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.MonitoringSettings) error {
	settingsM := fromSettingsDomain(settings)
	settingsM.ID = entity.SettingsKey

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save monitoring settings")
	}

	return nil
}

func fromSettingsDomain(settings *entity.MonitoringSettings) *model.MonitoringSettingsModel {
	return &model.MonitoringSettingsModel{
		ID:                  settings.ID,
		AnchorName:          settings.AnchorName,
		AnchorLat:           settings.AnchorLat,
		AnchorLon:           settings.AnchorLon,
		RadiusMeters:        settings.RadiusMeters,
		ScanIntervalMinutes: settings.ScanIntervalMinutes,
		Categories:          settings.Categories,
		ExcludeCategories:   settings.ExcludeCategories,
		MinRating:           settings.MinRating,
		NotifyNewBusinesses: settings.NotifyNewBusinesses,
		NotifyRatingChanges: settings.NotifyRatingChanges,
		NotifyTrending:      settings.NotifyTrending,
		Status:              string(settings.Status),
		CreatedAt:           settings.CreatedAt,
		UpdatedAt:           settings.UpdatedAt,
	}
}

func toSettingsDomain(settingsM *model.MonitoringSettingsModel) *entity.MonitoringSettings {
	return &entity.MonitoringSettings{
		ID:                  settingsM.ID,
		AnchorName:          settingsM.AnchorName,
		AnchorLat:           settingsM.AnchorLat,
		AnchorLon:           settingsM.AnchorLon,
		RadiusMeters:        settingsM.RadiusMeters,
		ScanIntervalMinutes: settingsM.ScanIntervalMinutes,
		Categories:          settingsM.Categories,
		ExcludeCategories:   settingsM.ExcludeCategories,
		MinRating:           settingsM.MinRating,
		NotifyNewBusinesses: settingsM.NotifyNewBusinesses,
		NotifyRatingChanges: settingsM.NotifyRatingChanges,
		NotifyTrending:      settingsM.NotifyTrending,
		Status:              entity.MonitoringStatus(settingsM.Status),
		CreatedAt:           settingsM.CreatedAt,
		UpdatedAt:           settingsM.UpdatedAt,
	}
}
