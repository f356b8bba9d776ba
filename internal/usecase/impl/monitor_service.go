package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/lifecycle"
	"bizradar/internal/domain/repository"
	"bizradar/internal/domain/service"
	"bizradar/internal/errors"
	"bizradar/internal/usecase"
	"bizradar/internal/util"
)

const defaultRestartPause = 500 * time.Millisecond

// monitorService owns the background scan scheduler. All scheduler state
// lives on the struct behind mu; scanMu serializes scan execution across
// the timer loop and the manual path, so at most one scan is ever in
// flight.
type monitorService struct {
	scanUsecase         usecase.ScanUsecase
	notificationUsecase usecase.NotificationUsecase
	settingsRepo        repository.SettingsRepository
	publisher           service.EventPublisher
	logger              *slog.Logger

	mu         sync.Mutex
	running    bool
	settings   *entity.MonitoringSettings
	cancel     context.CancelFunc
	done       chan struct{}
	nextScanAt time.Time

	scanMu sync.Mutex

	restartPause time.Duration
	stopTimeout  time.Duration
}

// NewMonitorService creates the scheduler. It starts in the Stopped state.
func NewMonitorService(
	scanUsecase usecase.ScanUsecase,
	notificationUsecase usecase.NotificationUsecase,
	settingsRepo repository.SettingsRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MonitorUsecase {
	return &monitorService{
		scanUsecase:         scanUsecase,
		notificationUsecase: notificationUsecase,
		settingsRepo:        settingsRepo,
		publisher:           publisher,
		logger:              logger,
		restartPause:        defaultRestartPause,
		stopTimeout:         lifecycle.SchedulerStopTimeout,
	}
}

// Start moves the scheduler to Running. It refuses when no settings are
// stored or monitoring is not active, leaving the scheduler stopped.
func (s *monitorService) Start(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return errors.New("cannot start monitoring: no settings stored")
		}

		return errors.Wrap(err, "failed to load monitoring settings")
	}
	if settings.Status != entity.MonitoringStatusActive {
		return errors.Errorf("cannot start monitoring: status is %s", settings.Status)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("Monitoring already running, ignoring start")

		return nil
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.running = true
	s.settings = settings
	s.cancel = cancel
	s.done = done
	interval := time.Duration(settings.ScanIntervalMinutes) * time.Minute
	s.nextScanAt = time.Now().Add(interval)
	s.mu.Unlock()

	go s.run(loopCtx, done, interval)

	s.logger.Info("Monitoring started",
		slog.String("anchor", settings.AnchorName),
		slog.Int("interval_minutes", settings.ScanIntervalMinutes),
	)
	s.notifyLifecycle(ctx, "Monitoring Started",
		fmt.Sprintf("Background monitoring started, scanning every %d minutes", settings.ScanIntervalMinutes))

	return nil
}

// Stop cancels the timer loop and waits a bounded grace period for it to
// drain. Calling Stop on a stopped scheduler is a no-op.
func (s *monitorService) Stop(ctx context.Context) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}

	cancel := s.cancel
	done := s.done
	s.running = false
	s.cancel = nil
	s.done = nil
	s.nextScanAt = time.Time{}
	s.mu.Unlock()

	cancel()

	select {
	case <-done:
	case <-time.After(s.stopTimeout):
		s.logger.Warn("Timed out waiting for scan loop to stop")
	}

	s.logger.Info("Monitoring stopped")
	s.notifyLifecycle(ctx, "Monitoring Stopped", "Background monitoring has been stopped")
}

// Restart stops and starts the scheduler, with a brief pause between so the
// previous loop has fully wound down.
func (s *monitorService) Restart(ctx context.Context) error {
	s.Stop(ctx)
	time.Sleep(s.restartPause)

	return s.Start(ctx)
}

// UpdateSettings hands the scheduler a new configuration. While running, a
// status change away from active stops it and an interval change restarts
// it; any other change is simply picked up on the next tick.
func (s *monitorService) UpdateSettings(ctx context.Context, settings *entity.MonitoringSettings) {
	s.mu.Lock()
	previous := s.settings
	s.settings = settings
	running := s.running
	s.mu.Unlock()

	if !running {
		return
	}

	switch {
	case settings.Status != entity.MonitoringStatusActive:
		s.logger.Info("Monitoring no longer active, stopping scheduler",
			slog.String("status", string(settings.Status)))
		s.Stop(ctx)

	case previous != nil && previous.ScanIntervalMinutes != settings.ScanIntervalMinutes:
		s.logger.Info("Scan interval changed, restarting scheduler",
			slog.Int("interval_minutes", settings.ScanIntervalMinutes))
		if err := s.Restart(ctx); err != nil {
			s.logger.Error("Failed to restart scheduler after settings change", slog.Any("error", err))
		}
	}
}

// ForceScanNow runs one scan immediately, independent of the timer.
// Scheduler state is unchanged; the scan still takes the single-flight slot.
func (s *monitorService) ForceScanNow(ctx context.Context) (*entity.ScanRecord, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monitoring settings")
	}
	if settings.Status != entity.MonitoringStatusActive {
		return nil, errors.Errorf("cannot scan: monitoring status is %s", settings.Status)
	}

	return s.runScan(ctx, settings), nil
}

// Status reports a point-in-time snapshot of the scheduler.
func (s *monitorService) Status(ctx context.Context) *usecase.MonitorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := &usecase.MonitorStatus{
		Running: s.running,
	}
	if s.running && !s.nextScanAt.IsZero() {
		nextScan := s.nextScanAt
		status.NextScanAt = &nextScan
	}
	if s.settings != nil {
		status.SettingsLoaded = true
		status.MonitoringStatus = s.settings.Status
		status.ScanIntervalMinutes = s.settings.ScanIntervalMinutes
		status.AnchorName = s.settings.AnchorName
	}

	return status
}

// run is the timer loop. It exits only when its context is cancelled; a
// panicking scan is recovered inside runScheduledScan so the loop survives.
func (s *monitorService) run(ctx context.Context, done chan struct{}, interval time.Duration) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.nextScanAt = time.Now().Add(interval)
			s.mu.Unlock()

			s.runScheduledScan(ctx)
		}
	}
}

func (s *monitorService) runScheduledScan(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic in scheduled scan", slog.Any("panic", r))
			s.notifyLifecycle(ctx, "Scan Error", fmt.Sprintf("Scheduled scan panicked: %v", r))
		}
	}()

	// Re-read the settings every tick so operator changes take effect
	// without a restart.
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load settings for scheduled scan", slog.Any("error", err))

		return
	}
	if settings.Status != entity.MonitoringStatusActive {
		s.logger.Debug("Monitoring not active, skipping scheduled scan",
			slog.String("status", string(settings.Status)))

		return
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.runScan(ctx, settings)
}

// runScan executes one scan under the single-flight slot, publishes the
// resulting event and raises the outcome notifications.
func (s *monitorService) runScan(ctx context.Context, settings *entity.MonitoringSettings) *entity.ScanRecord {
	s.scanMu.Lock()
	record := s.scanUsecase.Scan(ctx, settings)
	s.scanMu.Unlock()

	if err := s.publisher.PublishScanEvent(ctx, &service.ScanEvent{
		ScanID:            record.ID.String(),
		BusinessesFound:   record.BusinessesFound,
		NewBusinesses:     record.NewBusinesses,
		UpdatedBusinesses: record.UpdatedBusinesses,
		Success:           record.Success,
		ErrorMessage:      record.ErrorMessage,
	}); err != nil {
		s.logger.Error("Failed to publish scan event", slog.Any("error", err))
	}

	switch {
	case !record.Success:
		s.notifyLifecycle(ctx, "Scan Failed", fmt.Sprintf("Monitoring scan failed: %s", record.ErrorMessage))

	case record.NewBusinesses > 0 || record.UpdatedBusinesses > 5:
		s.notifyLifecycle(ctx, "Scan Summary",
			fmt.Sprintf("Scan found %d new businesses and %d updates in %s",
				record.NewBusinesses, record.UpdatedBusinesses, util.FormatDuration(record.Duration)))
	}

	return record
}

// notifyLifecycle records an operational notification with a desktop alert.
// Failures are logged and swallowed; lifecycle transitions do not depend on
// the notification trail.
func (s *monitorService) notifyLifecycle(ctx context.Context, title, message string) {
	if _, err := s.notificationUsecase.Create(ctx, &usecase.CreateNotificationInput{
		Type:    entity.NotificationTypeCompetitorAlert,
		Title:   title,
		Message: message,
		Desktop: true,
	}); err != nil {
		s.logger.Error("Failed to create lifecycle notification",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}
