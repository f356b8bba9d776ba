package handler

import (
	"log/slog"
	"net/http"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MonitorHandler exposes the scheduler state machine over HTTP.
type MonitorHandler struct {
	uc     usecase.MonitorUsecase
	logger *slog.Logger
}

// NewMonitorHandler is the constructor for MonitorHandler.
func NewMonitorHandler(uc usecase.MonitorUsecase, logger *slog.Logger) *MonitorHandler {
	return &MonitorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Status returns the current scheduler snapshot.
func (h *MonitorHandler) Status(c echo.Context) error {
	status := h.uc.Status(c.Request().Context())

	return response.Success(c, http.StatusOK, status, "")
}

// Start starts the background scheduler.
func (h *MonitorHandler) Start(c echo.Context) error {
	if err := h.uc.Start(c.Request().Context()); err != nil {
		return response.Conflict(c, "MONITOR_START_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, h.uc.Status(c.Request().Context()), "Monitoring started")
}

// Stop stops the background scheduler.
func (h *MonitorHandler) Stop(c echo.Context) error {
	h.uc.Stop(c.Request().Context())

	return response.Success(c, http.StatusOK, h.uc.Status(c.Request().Context()), "Monitoring stopped")
}

// Restart restarts the background scheduler.
func (h *MonitorHandler) Restart(c echo.Context) error {
	if err := h.uc.Restart(c.Request().Context()); err != nil {
		return response.Conflict(c, "MONITOR_RESTART_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, h.uc.Status(c.Request().Context()), "Monitoring restarted")
}

// ScanNow triggers an immediate scan outside the schedule.
func (h *MonitorHandler) ScanNow(c echo.Context) error {
	record, err := h.uc.ForceScanNow(c.Request().Context())
	if err != nil {
		return response.Conflict(c, "SCAN_REFUSED", err.Error())
	}

	return response.Success(c, http.StatusOK, record, "Scan completed")
}
