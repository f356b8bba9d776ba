package model

import (
	"time"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
// The primary key is the source-assigned place identifier, so repeated scans
// upsert rather than duplicate.
type BusinessModel struct {
	ID           string   `gorm:"type:text;primary_key"`
	Name         string   `gorm:"type:text;not null"`
	Categories   []string `gorm:"type:jsonb;serializer:json;not null"`
	Latitude     float64  `gorm:"type:decimal(10,8);not null;index:idx_businesses_lat"`
	Longitude    float64  `gorm:"type:decimal(11,8);not null;index:idx_businesses_lon"`
	Address      string   `gorm:"type:text"`
	City         string   `gorm:"type:text"`
	State        string   `gorm:"type:text"`
	PostalCode   string   `gorm:"type:text"`
	Country      string   `gorm:"type:text"`
	Rating       *float64 `gorm:"type:decimal(3,1)"`
	Popularity   *float64 `gorm:"type:decimal(4,3)"`
	Verified     bool     `gorm:"not null;default:false"`
	Website      string   `gorm:"type:text"`
	Phone        string   `gorm:"type:text"`
	IsCompetitor bool     `gorm:"not null;default:false;index"`
	FirstSeen    time.Time
	LastUpdated  time.Time
	Notes        string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
