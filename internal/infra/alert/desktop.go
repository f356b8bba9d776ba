// Package alert delivers immediate desktop alerts to the operator.
package alert

import (
	"log/slog"

	"bizradar/config"
	"bizradar/internal/domain/service"

	"github.com/gen2brain/beeep"
	"github.com/pkg/errors"
)

// desktopSink shows native desktop toasts via beeep.
type desktopSink struct {
	logger *slog.Logger
}

// noopSink is used when desktop alerts are disabled; the persisted
// notification trail remains the source of truth either way.
type noopSink struct {
	logger *slog.Logger
}

// NewAlertSink creates an AlertSink according to configuration.
func NewAlertSink(cfg *config.Config, logger *slog.Logger) service.AlertSink {
	if cfg.Alert == nil || !cfg.Alert.DesktopEnabled {
		logger.Info("Desktop alerts disabled, using no-op sink")

		return &noopSink{logger: logger}
	}

	if cfg.Env.ServiceName != "" {
		beeep.AppName = cfg.Env.ServiceName
	}

	return &desktopSink{logger: logger}
}

// Notify shows a desktop toast. Failures are wrapped but callers treat
// delivery as best-effort.
func (s *desktopSink) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return errors.Wrap(err, "failed to send desktop notification")
	}

	s.logger.Debug("Desktop notification sent", slog.String("title", title))

	return nil
}

func (s *noopSink) Notify(title, _ string) error {
	s.logger.Debug("Desktop alerts disabled, skipping", slog.String("title", title))

	return nil
}
