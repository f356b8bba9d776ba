package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecord is the append-only audit row written for every scan attempt,
// successful or not.
type ScanRecord struct {
	ID                uuid.UUID     `json:"id"`
	Timestamp         time.Time     `json:"timestamp"`          // When the scan started.
	BusinessesFound   int           `json:"businesses_found"`   // Total places returned by the source.
	NewBusinesses     int           `json:"new_businesses"`     // Businesses persisted for the first time.
	UpdatedBusinesses int           `json:"updated_businesses"` // Existing businesses with at least one changed field.
	Duration          time.Duration `json:"duration"`           // Wall-clock duration of the scan.
	Success           bool          `json:"success"`
	ErrorMessage      string        `json:"error_message,omitempty"` // Failure detail when Success is false.
}
