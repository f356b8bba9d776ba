package model

import (
	"time"
)

// MonitoringSettingsModel is the GORM-specific struct for the
// 'monitoring_settings' table. The table holds exactly one row, stored under
// the well-known settings key, rather than relying on insertion order.
type MonitoringSettingsModel struct {
	ID                  string   `gorm:"type:text;primary_key"`
	AnchorName          string   `gorm:"type:text"`
	AnchorLat           float64  `gorm:"type:decimal(10,8);not null"`
	AnchorLon           float64  `gorm:"type:decimal(11,8);not null"`
	RadiusMeters        int      `gorm:"not null;default:1000"`
	ScanIntervalMinutes int      `gorm:"not null;default:60"`
	Categories          []string `gorm:"type:jsonb;serializer:json"`
	ExcludeCategories   []string `gorm:"type:jsonb;serializer:json"`
	MinRating           *float64 `gorm:"type:decimal(3,1)"`
	NotifyNewBusinesses bool     `gorm:"not null;default:true"`
	NotifyRatingChanges bool     `gorm:"not null;default:true"`
	NotifyTrending      bool     `gorm:"not null;default:true"`
	Status              string   `gorm:"type:text;not null;default:'active'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MonitoringSettingsModel) TableName() string {
	return "monitoring_settings"
}
