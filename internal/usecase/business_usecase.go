package usecase

import (
	"context"

	"bizradar/internal/domain/entity"
)

// CompetitorSummary aggregates the competitors inside the monitored area.
type CompetitorSummary struct {
	TotalCompetitors   int            `json:"total_competitors"`
	AverageRating      float64        `json:"average_rating"`
	VerifiedBusinesses int            `json:"verified_businesses"`
	CategoryBreakdown  map[string]int `json:"category_breakdown"`
	RecentAdditions    int            `json:"recent_additions"` // First seen within the last 30 days.
}

// BusinessUsecase defines read-side operations over tracked businesses.
type BusinessUsecase interface {
	// List retrieves stored businesses, optionally competitors only.
	List(ctx context.Context, competitorOnly bool) ([]*entity.Business, error)

	// Trending fetches the currently trending places around the anchor and
	// reconciles them against the store, persisting ones not seen before.
	Trending(ctx context.Context) ([]*entity.Business, error)

	// CompetitorSummary aggregates competitors within the monitored radius
	// using the bounding-box approximation.
	CompetitorSummary(ctx context.Context) (*CompetitorSummary, error)
}
