package impl

import (
	"testing"

	"bizradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyPolicy_NewCompetitorsOnly(t *testing.T) {
	policy := &notifyPolicy{}
	settings := activeTestSettings()

	newBusinesses := []*entity.Business{
		{ID: "a", Name: "Competitor Cafe", Categories: []string{"Coffee Shop"}, IsCompetitor: true},
		{ID: "b", Name: "Some Laundromat", Categories: []string{"Laundromat"}, IsCompetitor: false},
	}

	notifications := policy.Evaluate(newBusinesses, nil, settings)

	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeNewBusiness, notifications[0].Type)
	assert.Equal(t, "Competitor Cafe", notifications[0].BusinessName)
	assert.Contains(t, notifications[0].Message, "Coffee Shop")
}

func TestNotifyPolicy_UpdatedBusinessIncludesRating(t *testing.T) {
	policy := &notifyPolicy{}
	settings := activeTestSettings()

	updated := []*entity.Business{
		{ID: "a", Name: "Bean There", Rating: floatPtr(4.5), IsCompetitor: true},
	}

	notifications := policy.Evaluate(nil, updated, settings)

	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeBusinessUpdated, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "4.5")
}

func TestNotifyPolicy_TogglesSuppressStreams(t *testing.T) {
	policy := &notifyPolicy{}
	settings := activeTestSettings()
	settings.NotifyNewBusinesses = false
	settings.NotifyRatingChanges = false

	newBusinesses := []*entity.Business{{ID: "a", Name: "A", IsCompetitor: true}}
	updated := []*entity.Business{{ID: "b", Name: "B"}}

	notifications := policy.Evaluate(newBusinesses, updated, settings)

	assert.Empty(t, notifications)
}
