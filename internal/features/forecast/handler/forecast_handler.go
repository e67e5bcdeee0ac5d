package handler

import (
	"errors"
	"time"

	"github.com/rahulphari/eye/internal/core/logger"
	"github.com/rahulphari/eye/internal/features/forecast/domain"
	"github.com/rahulphari/eye/internal/features/forecast/ports"
	"github.com/rahulphari/eye/internal/features/forecast/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ForecastHandler handles HTTP requests for forecast operations.
type ForecastHandler struct {
	forecastService ports.ForecastService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService ports.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ForecastResponse wraps an analysis with center metadata.
type ForecastResponse struct {
	CenterID    string                 `json:"center_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	LastSyncAt  *time.Time             `json:"last_sync_at,omitempty"`
	Analysis    *domain.AnalysisResult `json:"analysis"`
}

// VehicleRow is one vehicle row in a sync request. EstimatedArrivalTime
// accepts RFC 3339; an unparseable value is stored with a zero timestamp
// rather than rejected, so one bad row never blocks a sync.
type VehicleRow struct {
	ID                   string `json:"id"`
	OriginFacility       string `json:"origin_facility"`
	TotalLoad            int    `json:"total_load"`
	MixedBagCount        int    `json:"mixed_bag_count"`
	EstimatedArrivalTime string `json:"estimated_arrival_time"`
	OriginCoords         string `json:"origin_coords,omitempty"`
}

// SyncVehiclesRequest represents the request body for a vehicle sync.
type SyncVehiclesRequest struct {
	Vehicles []VehicleRow `json:"vehicles"`
}

// GetForecast godoc
// @Summary Get the workload forecast for a center
// @Description Runs the two-day shift analysis over the center's stored inbound vehicles.
// @Tags forecast
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} ForecastResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /centers/{id}/forecast [get]
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	centerID := c.Params("id")
	now := time.Now()

	ctx := c.Context()
	analysis, err := h.forecastService.GetForecast(ctx, centerID, now)
	if err != nil {
		if errors.Is(err, service.ErrCenterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "center not found",
				RayID:   c.Locals("requestid").(string),
			})
		}

		logger.Get().Error("Failed to build forecast", zap.String("center_id", centerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   c.Locals("requestid").(string),
		})
	}

	resp := ForecastResponse{
		CenterID:    centerID,
		GeneratedAt: now,
		Analysis:    analysis,
	}
	if lastSync, err := h.forecastService.LastSyncAt(ctx, centerID); err == nil && !lastSync.IsZero() {
		resp.LastSyncAt = &lastSync
	}

	return c.JSON(resp)
}

// SyncVehicles godoc
// @Summary Sync inbound vehicle data for a center
// @Description Merges the submitted vehicle rows into storage, enriches them with live ETAs where GPS tracking is enabled, and returns the resulting forecast. Unknown centers are auto-registered with default configuration.
// @Tags forecast
// @Accept json
// @Produce json
// @Param id path string true "Center ID"
// @Param vehicles body SyncVehiclesRequest true "Vehicle rows"
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /centers/{id}/vehicles [post]
func (h *ForecastHandler) SyncVehicles(c *fiber.Ctx) error {
	centerID := c.Params("id")

	var req SyncVehiclesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	now := time.Now()
	inputs := make([]domain.VehicleInput, 0, len(req.Vehicles))
	for _, row := range req.Vehicles {
		eta, err := time.Parse(time.RFC3339, row.EstimatedArrivalTime)
		if err != nil {
			logger.Get().Warn("Unparseable vehicle ETA, storing without timestamp",
				zap.String("vehicle_id", row.ID),
				zap.String("eta", row.EstimatedArrivalTime),
			)
			eta = time.Time{}
		}
		inputs = append(inputs, domain.VehicleInput{
			ID:                   row.ID,
			OriginFacility:       row.OriginFacility,
			TotalLoad:            row.TotalLoad,
			MixedBagCount:        row.MixedBagCount,
			EstimatedArrivalTime: eta,
			OriginCoords:         row.OriginCoords,
		})
	}

	ctx := c.Context()
	analysis, err := h.forecastService.SyncVehicles(ctx, centerID, inputs, now)
	if err != nil {
		logger.Get().Error("Failed to sync vehicles", zap.String("center_id", centerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(ForecastResponse{
		CenterID:    centerID,
		GeneratedAt: now,
		LastSyncAt:  &now,
		Analysis:    analysis,
	})
}

// MarkComplete godoc
// @Summary Mark a vehicle as fully processed
// @Description Removes the vehicle from the center's stored inbound data so it no longer appears in forecasts.
// @Tags forecast
// @Produce json
// @Param id path string true "Center ID"
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /centers/{id}/vehicles/{vehicleID} [delete]
func (h *ForecastHandler) MarkComplete(c *fiber.Ctx) error {
	centerID := c.Params("id")
	vehicleID := c.Params("vehicleID")

	ctx := c.Context()
	if err := h.forecastService.MarkComplete(ctx, centerID, vehicleID); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "vehicle not found",
				RayID:   c.Locals("requestid").(string),
			})
		}

		logger.Get().Error("Failed to mark vehicle complete",
			zap.String("center_id", centerID),
			zap.String("vehicle_id", vehicleID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(fiber.Map{
		"message": "vehicle marked complete",
	})
}
