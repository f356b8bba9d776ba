package entity

import (
	"time"
)

// MonitoringStatus is the lifecycle status of the monitoring configuration.
type MonitoringStatus string

const (
	// MonitoringStatusActive means scheduled scans should run.
	MonitoringStatusActive MonitoringStatus = "active"
	// MonitoringStatusPaused means monitoring is temporarily suspended by the operator.
	MonitoringStatusPaused MonitoringStatus = "paused"
	// MonitoringStatusInactive means monitoring is switched off.
	MonitoringStatusInactive MonitoringStatus = "inactive"
)

// SettingsKey is the well-known key of the single monitoring settings row.
// The configuration is an effective singleton; addressing it by a fixed key
// keeps lookups independent of row-insertion order.
const SettingsKey = "default"

// MonitoringSettings is the operator-owned monitoring configuration.
// It is read at the start of every scan, so changes take effect on the next
// cycle without a process restart.
type MonitoringSettings struct {
	ID                  string           `json:"id"`                    // Fixed settings key, see SettingsKey.
	AnchorName          string           `json:"anchor_name"`           // Name of the operator's own business.
	AnchorLat           float64          `json:"anchor_lat"`            // Latitude of the monitored anchor point.
	AnchorLon           float64          `json:"anchor_lon"`            // Longitude of the monitored anchor point.
	RadiusMeters        int              `json:"radius_meters"`         // Monitoring radius in meters, > 0.
	ScanIntervalMinutes int              `json:"scan_interval_minutes"` // Minutes between scheduled scans, > 0.
	Categories          []string         `json:"categories"`            // Categories to monitor; empty means everything.
	ExcludeCategories   []string         `json:"exclude_categories"`    // Category substrings to drop from results.
	MinRating           *float64         `json:"min_rating"`            // Optional minimum rating threshold.
	NotifyNewBusinesses bool             `json:"notify_new_businesses"`
	NotifyRatingChanges bool             `json:"notify_rating_changes"`
	NotifyTrending      bool             `json:"notify_trending"`
	Status              MonitoringStatus `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// DefaultMonitoringSettings returns the configuration created when none is
// stored yet.
func DefaultMonitoringSettings(radiusMeters, scanIntervalMinutes int, now time.Time) *MonitoringSettings {
	return &MonitoringSettings{
		ID:                  SettingsKey,
		RadiusMeters:        radiusMeters,
		ScanIntervalMinutes: scanIntervalMinutes,
		NotifyNewBusinesses: true,
		NotifyRatingChanges: true,
		NotifyTrending:      true,
		Status:              MonitoringStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
