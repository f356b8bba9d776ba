// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bizradar/internal/domain/entity"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the interface for business-related database operations.
type BusinessRepository interface {
	// FindByID retrieves a business by its source-assigned identifier.
	// Returns ErrBusinessNotFound when no such business is stored.
	FindByID(ctx context.Context, id string) (*entity.Business, error)

	// Save upserts a business keyed by its identifier.
	Save(ctx context.Context, business *entity.Business) error

	// List retrieves stored businesses, newest first. When competitorOnly is
	// true only businesses flagged as competitors are returned.
	List(ctx context.Context, competitorOnly bool) ([]*entity.Business, error)

	// ListInBoundingBox retrieves businesses inside the flat bounding-box
	// approximation of a circle around the given point.
	ListInBoundingBox(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Business, error)
}
