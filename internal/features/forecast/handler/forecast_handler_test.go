package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rahulphari/eye/internal/features/forecast/domain"
	"github.com/rahulphari/eye/internal/features/forecast/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockForecastService is a mock implementation of ForecastService for testing.
type mockForecastService struct {
	returnResult *domain.AnalysisResult
	returnError  error
	lastSync     time.Time

	syncedInputs []domain.VehicleInput
	completedID  string
}

func (m *mockForecastService) GetForecast(_ context.Context, _ string, _ time.Time) (*domain.AnalysisResult, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnResult, nil
}

func (m *mockForecastService) SyncVehicles(_ context.Context, _ string, inputs []domain.VehicleInput, _ time.Time) (*domain.AnalysisResult, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	m.syncedInputs = inputs
	return m.returnResult, nil
}

func (m *mockForecastService) MarkComplete(_ context.Context, _, vehicleID string) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.completedID = vehicleID
	return nil
}

func (m *mockForecastService) LastSyncAt(_ context.Context, _ string) (time.Time, error) {
	return m.lastSync, nil
}

func newTestApp(svc *mockForecastService) *fiber.App {
	handler := NewForecastHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/centers/:id/forecast", handler.GetForecast)
	app.Post("/centers/:id/vehicles", handler.SyncVehicles)
	app.Delete("/centers/:id/vehicles/:vehicleID", handler.MarkComplete)

	return app
}

func TestForecastHandler_GetForecast_Success(t *testing.T) {
	svc := &mockForecastService{
		returnResult: &domain.AnalysisResult{
			Totals: domain.Totals{TotalLoad: 700, VehicleCount: 1},
		},
		lastSync: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/centers/DEL_HUB/forecast", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ForecastResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, "DEL_HUB", result.CenterID)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, 700, result.Analysis.Totals.TotalLoad)
	require.NotNil(t, result.LastSyncAt)
}

func TestForecastHandler_GetForecast_CenterNotFound(t *testing.T) {
	svc := &mockForecastService{returnError: service.ErrCenterNotFound}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/centers/UNKNOWN/forecast", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp.Message, "center not found")
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestForecastHandler_GetForecast_InternalError(t *testing.T) {
	svc := &mockForecastService{returnError: errors.New("redis unavailable")}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/centers/DEL_HUB/forecast", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestForecastHandler_SyncVehicles_Success(t *testing.T) {
	svc := &mockForecastService{returnResult: &domain.AnalysisResult{}}
	app := newTestApp(svc)

	body := `{"vehicles":[{"id":"DL01AB1234","origin_facility":"Gurgaon_GW","total_load":500,"mixed_bag_count":40,"estimated_arrival_time":"2026-03-10T12:00:00Z"}]}`
	req := httptest.NewRequest("POST", "/centers/DEL_HUB/vehicles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, svc.syncedInputs, 1)
	in := svc.syncedInputs[0]
	assert.Equal(t, "DL01AB1234", in.ID)
	assert.Equal(t, 500, in.TotalLoad)
	assert.True(t, in.EstimatedArrivalTime.Equal(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))
}

func TestForecastHandler_SyncVehicles_UnparseableETAKept(t *testing.T) {
	svc := &mockForecastService{returnResult: &domain.AnalysisResult{}}
	app := newTestApp(svc)

	body := `{"vehicles":[{"id":"DL01AB1234","estimated_arrival_time":"10/03/2026 12:00"}]}`
	req := httptest.NewRequest("POST", "/centers/DEL_HUB/vehicles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The row survives with a zero timestamp instead of failing the sync.
	require.Len(t, svc.syncedInputs, 1)
	assert.True(t, svc.syncedInputs[0].EstimatedArrivalTime.IsZero())
}

func TestForecastHandler_SyncVehicles_InvalidBody(t *testing.T) {
	svc := &mockForecastService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/centers/DEL_HUB/vehicles", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestForecastHandler_MarkComplete_Success(t *testing.T) {
	svc := &mockForecastService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("DELETE", "/centers/DEL_HUB/vehicles/DL01AB1234", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "DL01AB1234", svc.completedID)
}

func TestForecastHandler_MarkComplete_NotFound(t *testing.T) {
	svc := &mockForecastService{returnError: service.ErrVehicleNotFound}
	app := newTestApp(svc)

	req := httptest.NewRequest("DELETE", "/centers/DEL_HUB/vehicles/UNKNOWN", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp.Message, "vehicle not found")
}
