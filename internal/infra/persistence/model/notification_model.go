package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications'
// table. Rows are append-only; only the read and dismissed flags mutate.
type NotificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type         string    `gorm:"type:text;not null;index"`
	Title        string    `gorm:"type:text;not null"`
	Message      string    `gorm:"type:text;not null"`
	BusinessID   string    `gorm:"type:text;index"`
	BusinessName string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	Read         bool      `gorm:"not null;default:false"`
	Dismissed    bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
