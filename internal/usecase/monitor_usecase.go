package usecase

import (
	"context"
	"time"

	"bizradar/internal/domain/entity"
)

// MonitorStatus is a point-in-time snapshot of the background scheduler.
// NextScanAt is set only while the scheduler is running.
type MonitorStatus struct {
	Running             bool                    `json:"running"`
	SettingsLoaded      bool                    `json:"settings_loaded"`
	MonitoringStatus    entity.MonitoringStatus `json:"monitoring_status"`
	ScanIntervalMinutes int                     `json:"scan_interval_minutes"`
	AnchorName          string                  `json:"anchor_name"`
	NextScanAt          *time.Time              `json:"next_scan_at,omitempty"`
}

// MonitorUsecase defines the interface for the background scan scheduler.
// The scheduler owns its state; at most one scan executes at a time across
// the scheduled and manual paths.
type MonitorUsecase interface {
	// Start moves the scheduler from Stopped to Running. It fails when no
	// settings are stored or their status is not active, leaving the
	// scheduler stopped.
	Start(ctx context.Context) error

	// Stop cancels the timer and waits a bounded grace period for the
	// background loop to drain. No-op when already stopped.
	Stop(ctx context.Context)

	// Restart stops and starts the scheduler, with a brief pause between.
	Restart(ctx context.Context) error

	// UpdateSettings reconfigures the scheduler. While running, an interval
	// change or a status change away from active triggers a restart or
	// stop; otherwise the settings are cached for the next tick.
	UpdateSettings(ctx context.Context, settings *entity.MonitoringSettings)

	// ForceScanNow runs a scan immediately, independent of the timer, iff
	// the monitoring status is active. Scheduler state is unchanged.
	ForceScanNow(ctx context.Context) (*entity.ScanRecord, error)

	// Status reports the current scheduler state.
	Status(ctx context.Context) *MonitorStatus
}
