package usecase

import (
	"context"

	"bizradar/internal/domain/entity"
)

// UpdateSettingsInput is a partial update of the monitoring configuration.
// Nil fields keep their stored values.
type UpdateSettingsInput struct {
	AnchorName          *string   `json:"anchor_name,omitempty"`
	AnchorLat           *float64  `json:"anchor_lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	AnchorLon           *float64  `json:"anchor_lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
	RadiusMeters        *int      `json:"radius_meters,omitempty" validate:"omitempty,gt=0"`
	ScanIntervalMinutes *int      `json:"scan_interval_minutes,omitempty" validate:"omitempty,gt=0"`
	Categories          *[]string `json:"categories,omitempty"`
	ExcludeCategories   *[]string `json:"exclude_categories,omitempty"`
	MinRating           *float64  `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	NotifyNewBusinesses *bool     `json:"notify_new_businesses,omitempty"`
	NotifyRatingChanges *bool     `json:"notify_rating_changes,omitempty"`
	NotifyTrending      *bool     `json:"notify_trending,omitempty"`
	Status              *string   `json:"status,omitempty" validate:"omitempty,oneof=active paused inactive"`
}

// SettingsUsecase defines the interface for the monitoring configuration
// surface. The core reads settings at the start of every scan; mutations go
// through here so the scheduler can react to them.
type SettingsUsecase interface {
	// Get retrieves the monitoring settings, creating the defaults when
	// none are stored yet.
	Get(ctx context.Context) (*entity.MonitoringSettings, error)

	// Update validates and applies a partial update, persists it, and
	// forwards the new settings to the scheduler.
	Update(ctx context.Context, input *UpdateSettingsInput) (*entity.MonitoringSettings, error)
}
