// Package usecase defines the application-level interfaces of the project.
package usecase

import (
	"context"

	"bizradar/internal/domain/entity"
)

// ScanUsecase defines the interface for the scan-and-diff engine.
type ScanUsecase interface {
	// Scan performs one reconciliation pass against the given settings:
	// fetch, filter, diff against stored state, persist, classify. It never
	// returns an error; failures are captured in the returned ScanRecord,
	// which is persisted either way. The engine is the sole writer of
	// Business and ScanRecord rows.
	Scan(ctx context.Context, settings *entity.MonitoringSettings) *entity.ScanRecord

	// History retrieves past scan records, newest first, capped at limit
	// when limit > 0.
	History(ctx context.Context, limit int) ([]*entity.ScanRecord, error)
}
