package repository

import (
	"context"

	"bizradar/internal/domain/entity"
)

// ScanRepository defines the interface for the append-only scan history.
type ScanRepository interface {
	// Append persists one scan attempt, completed or failed.
	Append(ctx context.Context, record *entity.ScanRecord) error

	// List retrieves scan history entries, newest first, capped at limit
	// when limit > 0.
	List(ctx context.Context, limit int) ([]*entity.ScanRecord, error)
}
