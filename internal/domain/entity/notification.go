package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of notification kinds the system emits.
type NotificationType string

const (
	// NotificationTypeNewBusiness signals a newly detected competitor.
	NotificationTypeNewBusiness NotificationType = "new_business"
	// NotificationTypeBusinessUpdated signals that a tracked business changed.
	NotificationTypeBusinessUpdated NotificationType = "business_updated"
	// NotificationTypeTrendingActivity signals elevated activity around a business.
	NotificationTypeTrendingActivity NotificationType = "trending_activity"
	// NotificationTypeRatingChange signals a rating delta for a tracked business.
	NotificationTypeRatingChange NotificationType = "rating_change"
	// NotificationTypeCompetitorAlert is the generic lifecycle/operational alert.
	NotificationTypeCompetitorAlert NotificationType = "competitor_alert"
)

// Valid reports whether the type is one of the known notification kinds.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeNewBusiness,
		NotificationTypeBusinessUpdated,
		NotificationTypeTrendingActivity,
		NotificationTypeRatingChange,
		NotificationTypeCompetitorAlert:
		return true
	}

	return false
}

// Notification is an operator-facing alert persisted by a scan or by the
// scheduler lifecycle. Rows are append-only; only the Read and Dismissed
// flags may be flipped after creation.
type Notification struct {
	ID           uuid.UUID        `json:"id"`            // The unique identifier for the notification.
	Type         NotificationType `json:"type"`          // What kind of event this notification describes.
	Title        string           `json:"title"`         // Short headline shown to the operator.
	Message      string           `json:"message"`       // Full human-readable message body.
	BusinessID   string           `json:"business_id"`   // Optional reference to the related business.
	BusinessName string           `json:"business_name"` // Optional name of the related business.
	CreatedAt    time.Time        `json:"created_at"`    // When the notification was created.
	Read         bool             `json:"read"`          // Whether the operator has read it.
	Dismissed    bool             `json:"dismissed"`     // Whether the operator has dismissed it.
}
