package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecordModel is the GORM-specific struct for the 'scan_history' table.
// One append-only row per scan attempt, written on success and failure.
type ScanRecordModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Timestamp         time.Time `gorm:"index"`
	BusinessesFound   int       `gorm:"not null;default:0"`
	NewBusinesses     int       `gorm:"not null;default:0"`
	UpdatedBusinesses int       `gorm:"not null;default:0"`
	DurationMillis    int64     `gorm:"not null;default:0"`
	Success           bool      `gorm:"not null;default:true"`
	ErrorMessage      string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ScanRecordModel) TableName() string {
	return "scan_history"
}
