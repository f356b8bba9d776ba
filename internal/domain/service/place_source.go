// Package service defines interfaces for outbound collaborators of the core.
package service

import (
	"context"

	"bizradar/internal/domain/entity"
)

// PlaceSource defines the interface for the external location-search API.
// Implementations are expected to rate-limit themselves and to swallow
// expected HTTP failures (empty result, nil error); only transport-level,
// auth, and exhausted rate-limit failures surface as errors.
type PlaceSource interface {
	// SearchNearby searches for places around a point. Results missing
	// required fields are dropped rather than failing the batch.
	SearchNearby(ctx context.Context, lat, lon float64, radiusMeters int, categories []string, limit int) ([]*entity.PlaceRecord, error)

	// GetDetails fetches a single place by its identifier. Returns
	// (nil, nil) when the source has no such place.
	GetDetails(ctx context.Context, id string) (*entity.PlaceRecord, error)

	// GetTrending returns places around a point with popularity above the
	// trending threshold, most popular first. It is derived from
	// SearchNearby; the source has no dedicated trending feed.
	GetTrending(ctx context.Context, lat, lon float64, radiusMeters int) ([]*entity.PlaceRecord, error)
}
