package handler

import (
	"log/slog"
	"net/http"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler exposes the monitoring configuration.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the monitoring settings, creating defaults when absent.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.uc.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to load settings", slog.Any("error", err))

		return response.InternalServerError(c, "SETTINGS_LOAD_FAILED", "Failed to load monitoring settings")
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// Update applies a partial settings update.
func (h *SettingsHandler) Update(c echo.Context) error {
	var input usecase.UpdateSettingsInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid settings payload")
	}

	settings, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return response.BadRequest(c, "SETTINGS_UPDATE_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated")
}
