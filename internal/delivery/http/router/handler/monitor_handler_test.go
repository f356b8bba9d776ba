package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizradar/internal/delivery/http/response"
	"bizradar/internal/domain/entity"
	mockUC "bizradar/internal/mocks/usecase"
	"bizradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMonitorHandler(t *testing.T) (*MonitorHandler, *mockUC.MockMonitorUsecase) {
	uc := mockUC.NewMockMonitorUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMonitorHandler(uc, logger), uc
}

func performRequest(t *testing.T, method, target string, handle echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handle(c))

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *response.Response {
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return &body
}

func TestMonitorHandler_Status(t *testing.T) {
	h, uc := createTestMonitorHandler(t)

	uc.EXPECT().Status(mock.Anything).Return(&usecase.MonitorStatus{
		Running:             true,
		SettingsLoaded:      true,
		MonitoringStatus:    entity.MonitoringStatusActive,
		ScanIntervalMinutes: 60,
		AnchorName:          "My Cafe",
	})

	rec := performRequest(t, http.MethodGet, "/api/monitor/status", h.Status)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
}

func TestMonitorHandler_Start_Success(t *testing.T) {
	h, uc := createTestMonitorHandler(t)

	uc.EXPECT().Start(mock.Anything).Return(nil)
	uc.EXPECT().Status(mock.Anything).Return(&usecase.MonitorStatus{Running: true})

	rec := performRequest(t, http.MethodPost, "/api/monitor/start", h.Start)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMonitorHandler_Start_Refused(t *testing.T) {
	h, uc := createTestMonitorHandler(t)

	uc.EXPECT().Start(mock.Anything).Return(errors.New("cannot start monitoring: status is paused"))

	rec := performRequest(t, http.MethodPost, "/api/monitor/start", h.Start)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "MONITOR_START_FAILED", body.Error.Code)
}

func TestMonitorHandler_ScanNow(t *testing.T) {
	h, uc := createTestMonitorHandler(t)

	uc.EXPECT().ForceScanNow(mock.Anything).Return(&entity.ScanRecord{Success: true, NewBusinesses: 1}, nil)

	rec := performRequest(t, http.MethodPost, "/api/monitor/scan", h.ScanNow)

	assert.Equal(t, http.StatusOK, rec.Code)
}
