package repository

import (
	"context"
	"errors"

	"bizradar/internal/domain/entity"
)

// ErrSettingsNotFound is returned when no monitoring settings are stored yet.
var ErrSettingsNotFound = errors.New("monitoring settings not found")

// SettingsRepository defines the interface for the singleton monitoring
// configuration. The row lives under the fixed key entity.SettingsKey.
type SettingsRepository interface {
	// Get retrieves the monitoring settings.
	// Returns ErrSettingsNotFound when none are stored.
	Get(ctx context.Context) (*entity.MonitoringSettings, error)

	// Save upserts the monitoring settings under the fixed key.
	Save(ctx context.Context, settings *entity.MonitoringSettings) error
}
