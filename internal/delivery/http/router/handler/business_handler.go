package handler

import (
	"log/slog"
	"net/http"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BusinessHandler exposes the tracked-business read side.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns stored businesses. ?competitors=true restricts the result to
// flagged competitors.
func (h *BusinessHandler) List(c echo.Context) error {
	competitorOnly := c.QueryParam("competitors") == "true"

	businesses, err := h.uc.List(c.Request().Context(), competitorOnly)
	if err != nil {
		h.logger.Error("Failed to list businesses", slog.Any("error", err))

		return response.InternalServerError(c, "BUSINESS_LIST_FAILED", "Failed to list businesses")
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Trending returns the currently trending places around the anchor.
func (h *BusinessHandler) Trending(c echo.Context) error {
	businesses, err := h.uc.Trending(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to fetch trending businesses", slog.Any("error", err))

		return response.InternalServerError(c, "TRENDING_FAILED", "Failed to fetch trending businesses")
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Summary returns aggregate competitor statistics for the monitored area.
func (h *BusinessHandler) Summary(c echo.Context) error {
	summary, err := h.uc.CompetitorSummary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to summarize competitors", slog.Any("error", err))

		return response.InternalServerError(c, "COMPETITOR_SUMMARY_FAILED", "Failed to summarize competitors")
	}

	return response.Success(c, http.StatusOK, summary, "")
}
