package impl

import (
	"fmt"
	"strings"

	"bizradar/internal/domain/entity"
)

// notifyPolicy decides which notifications a completed scan produces.
// The scheduler's lifecycle notifications are not its business; it only
// looks at the scan diff and the operator's toggles.
type notifyPolicy struct{}

// Evaluate turns a scan diff into notifications. New competitors produce a
// new-business notification each; updated businesses produce an update
// notification each. Either stream can be switched off in the settings.
func (p *notifyPolicy) Evaluate(newBusinesses, updatedBusinesses []*entity.Business, settings *entity.MonitoringSettings) []*entity.Notification {
	var notifications []*entity.Notification

	if settings.NotifyNewBusinesses {
		for _, business := range newBusinesses {
			if !business.IsCompetitor {
				continue
			}

			message := fmt.Sprintf("%s opened nearby", business.Name)
			if len(business.Categories) > 0 {
				message = fmt.Sprintf("%s (%s) opened nearby", business.Name, strings.Join(business.Categories, ", "))
			}

			notifications = append(notifications, &entity.Notification{
				Type:         entity.NotificationTypeNewBusiness,
				Title:        "New Business Detected",
				Message:      message,
				BusinessID:   business.ID,
				BusinessName: business.Name,
			})
		}
	}

	if settings.NotifyRatingChanges {
		for _, business := range updatedBusinesses {
			message := fmt.Sprintf("%s has updated details", business.Name)
			if business.Rating != nil {
				message = fmt.Sprintf("%s has updated details, current rating %.1f", business.Name, *business.Rating)
			}

			notifications = append(notifications, &entity.Notification{
				Type:         entity.NotificationTypeBusinessUpdated,
				Title:        "Business Updated",
				Message:      message,
				BusinessID:   business.ID,
				BusinessName: business.Name,
			})
		}
	}

	return notifications
}
