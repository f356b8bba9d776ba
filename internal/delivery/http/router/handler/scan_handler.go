package handler

import (
	"log/slog"
	"net/http"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ScanHandler exposes the append-only scan history.
type ScanHandler struct {
	uc     usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler.
func NewScanHandler(uc usecase.ScanUsecase, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		uc:     uc,
		logger: logger,
	}
}

// History returns past scan records, newest first. Supports ?limit=n.
func (h *ScanHandler) History(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))

	records, err := h.uc.History(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list scan history", slog.Any("error", err))

		return response.InternalServerError(c, "SCAN_HISTORY_FAILED", "Failed to list scan history")
	}

	return response.Success(c, http.StatusOK, records, "")
}
